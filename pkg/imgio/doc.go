/*
Package imgio moves images in and out of the flat pixel buffers that package scramble operates on.

Loading decodes an image file, normalizes it to one of three color modes (grayscale, RGB, or RGBA), and flattens it row by row into a single byte slice.
Saving reverses the process, picking the output codec from the file extension.

The color mode is normalized so that it survives an encode/decode cycle: a scrambled buffer written as PNG must load back with the same mode and therefore the same byte length, or decryption would be handed a mismatched buffer.
For pipelines that need to sidestep image codecs entirely, WriteRaw and ReadRaw store the buffer in a small headered container instead.
*/
package imgio
