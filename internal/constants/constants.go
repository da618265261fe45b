package constants

// Fingerprint strategies
const (
	StrategyExact      = "exact"
	StrategyPerceptual = "perceptual"
)

// Exact-strategy digest algorithms
const (
	HashAlgorithmXXHash = "xxhash"
	HashAlgorithmSHA1   = "sha1"
	HashAlgorithmSHA256 = "sha256"
	HashAlgorithmSHA512 = "sha512"
	HashAlgorithmBLAKE3 = "blake3"
)

// Duplicate-group actions
const (
	ActionReport = "report"
	ActionDelete = "delete"
	ActionMove   = "move"
)

// Group sort keys
const (
	SortBySize  = "size"
	SortByCount = "count"
	SortByPath  = "path"
)

// Defaults
const (
	DefaultAlgorithm = HashAlgorithmXXHash
	DefaultThreshold = 0.1
	DefaultSortKey   = SortBySize

	// ReadChunkSize bounds memory while streaming file content through a
	// digest, regardless of file size.
	ReadChunkSize = 1 << 20

	// PerceptualHashBits is the width of the phash fingerprint; threshold
	// values are normalized against it.
	PerceptualHashBits = 64
)

// Exit codes
const (
	ExitOK          = 0
	ExitFileErrors  = 1
	ExitConfigError = 2
)

// File permissions
const (
	StandardDirPerms  = 0o755 // Standard directory permissions
	StandardFilePerms = 0o644 // Standard file permissions
)
