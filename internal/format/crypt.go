package format

// Decrypt reverses the QHF message payload transform. Each encrypted byte
// at 1-based position p decodes to ((b + p) & 0xFF) ^ 0xFF. The transform
// is position dependent, so it must run over the entire payload before any
// UTF-8 decoding is attempted: multi-byte sequences only become valid once
// every byte is restored.
func Decrypt(enc []byte) []byte {
	out := make([]byte, len(enc))
	for i, b := range enc {
		out[i] = (b + byte(i+1)) ^ 0xFF
	}
	return out
}

// Encrypt is the forward transform, solved from Decrypt:
// enc = (plain ^ 0xFF) - p mod 256. It exists to build test fixtures; the
// decoder never writes QHF files.
func Encrypt(plain []byte) []byte {
	out := make([]byte, len(plain))
	for i, b := range plain {
		out[i] = (b ^ 0xFF) - byte(i+1)
	}
	return out
}
