/*
Package scramble provides reversible, password-derived scrambling of raw pixel buffers.

Note that this is NOT encryption, since no authenticated cipher or key stretching is involved.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
That being said, it's useful for making image content unreadable to a passive observer, since reversing the process generally requires knowledge of the original password and mode.

# How it works:

A password is reduced with SHA-256 to a single mask byte and a 64-bit shuffle seed.
Depending on the selected Mode, the mask byte is XORed across the buffer, the buffer bytes are reordered by a seed-derived permutation, or both.
Every step is deterministic, so running Decrypt with the same password and mode exactly undoes Encrypt.

# Important note:

The same password and mode must be provided to accurately reverse the process.
There is no integrity check, so a mismatched password or mode produces a structurally valid but garbled buffer rather than an error.

# General guidelines:
  - Mode "both" is the default and recommended setting, since a lone XOR mask preserves pixel positions and a lone shuffle preserves the byte histogram.
  - The derivation and shuffle algorithms are pinned, so buffers scrambled on one platform or release reverse correctly on another.
  - Anything that must actually stay secret belongs behind real encryption, not this package.
*/
package scramble
