package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/imgscramble/pkg/imgio"
	"github.com/saylorsolutions/imgscramble/pkg/scramble"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var version = "0.1.0"

var (
	inPath   string
	outPath  string
	password string
	modeFlag string
	logLevel string
	rootCmd  *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "imgscramble",
		Short: "Reversibly scramble image pixels with a password-derived XOR mask and byte shuffle",
		Long: `imgscramble reversibly scrambles the raw pixel bytes of an image using two
password-derived transforms: a single-byte XOR mask and a deterministic byte
shuffle. The same password and mode exactly reverse the process.

This is obfuscation, NOT encryption. There is no integrity check, so a wrong
password or mode silently produces garbage output.

Scrambled output should go to a lossless format (.png, .bmp, .tiff, or the
.pxr raw container); lossy JPEG destroys a scrambled image beyond recovery.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	encryptCmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Scramble an image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, scramble.Encrypt)
		},
	}
	decryptCmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Restore a scrambled image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, scramble.Decrypt)
		},
	}

	for _, cmd := range []*cobra.Command{encryptCmd, decryptCmd} {
		cmd.Flags().StringVarP(&inPath, "in", "i", "", "Input image path (required)")
		cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output image path (required)")
		cmd.Flags().StringVarP(&password, "password", "p", "", "Password used to derive the mask and shuffle seed (prompted when omitted)")
		cmd.Flags().StringVarP(&modeFlag, "mode", "m", "both", "Transform(s) to apply: xor, shuffle, or both")
		cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
		if err := cmd.MarkFlagRequired("in"); err != nil {
			panic(err)
		}
		if err := cmd.MarkFlagRequired("out"); err != nil {
			panic(err)
		}
		rootCmd.AddCommand(cmd)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, transform func([]byte, string, scramble.Mode) ([]byte, error)) error {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "imgscramble",
		Level: hclog.LevelFromString(logLevel),
	})

	mode, err := scramble.ParseMode(modeFlag)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("password") {
		password, err = promptPassword()
		if err != nil {
			return err
		}
	}

	data, err := load(inPath)
	if err != nil {
		logger.Error("failed to load input", "path", inPath, "error", err)
		return err
	}
	logger.Info("loaded image", "path", inPath, "width", data.Width, "height", data.Height, "mode", data.Mode.String(), "bytes", len(data.Pix))

	data.Pix, err = transform(data.Pix, password, mode)
	if err != nil {
		logger.Error("transform failed", "mode", mode, "error", err)
		return err
	}

	if err := save(outPath, data); err != nil {
		logger.Error("failed to write output", "path", outPath, "error", err)
		return err
	}
	logger.Info("wrote output", "path", outPath, "mode", mode)
	return nil
}

func load(path string) (*imgio.PixelData, error) {
	if imgio.IsRaw(path) {
		return imgio.ReadRaw(path)
	}
	return imgio.Load(path)
}

func save(path string, data *imgio.PixelData) error {
	if imgio.IsRaw(path) {
		return imgio.WriteRaw(path, data)
	}
	return imgio.Save(path, data)
}

func promptPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no password given and stdin is not a terminal, use --password")
	}
	fmt.Fprint(os.Stderr, "Password: ")
	entered, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(entered), nil
}
