package version

// Version and Commit are overridden at build time, e.g.
// -ldflags "-X github.com/Cenagaurav77/Present-App/internal/version.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = ""
)

func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
