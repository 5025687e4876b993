package gotok

const (
	DefaultTokenSentinel = "T1=="
	DefaultSDKVersion    = "tbgo"
)

// Credentials identify the account on the media platform.
// The secret never leaves the server. It signs tokens and authenticates
// session creation requests.
type Credentials struct {
	Key       string `yaml:"key"`
	Secret    string `yaml:"secret"`
	ServerURL string `yaml:"server"`
}
