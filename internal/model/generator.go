package model

// GenerateRequest represents the raw options parsed from the command line.
// Pointer fields distinguish missing (nil -> default) from an explicit 0.
type GenerateRequest struct {
	Length         *int
	Count          *int
	Digits         bool
	Symbols        bool
	Uppercase      bool
	Lowercase      bool
	AvoidAmbiguous bool
	Exclude        string
	Prefix         string
	Suffix         string
	NoDuplicates   bool
	Seed           *int64
	Secure         bool
	Hash           bool
}

// GenerationConfig is the normalized set of options for a single run.
type GenerationConfig struct {
	Length         int
	Count          int
	Digits         bool
	Symbols        bool
	Uppercase      bool
	Lowercase      bool
	AvoidAmbiguous bool
	Exclude        string
	NoDuplicates   bool
	Seed           *int64
	Prefix         string
	Suffix         string
}

// Rating is the qualitative strength bucket of a password.
type Rating int

const (
	Weak Rating = iota
	Medium
	Strong
	VeryStrong
)

func (r Rating) String() string {
	switch r {
	case Weak:
		return "Weak"
	case Medium:
		return "Medium"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// MarshalText renders the rating by its display name.
func (r Rating) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result is a single generated password ready for output.
type Result struct {
	Index    int    `json:"index"`
	Password string `json:"password"`
	Rating   Rating `json:"rating"`
	Hash     string `json:"hash,omitempty"`
}

// GenerateResponse is the full output of a run.
type GenerateResponse struct {
	Config      GenerationConfig `json:"-"`
	CharsetSize int              `json:"-"`
	Results     []Result         `json:"results"`
}
