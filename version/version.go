package version

import (
	"runtime"
	"runtime/debug"
)

// Populated at build time via -ldflags "-X chatbot-tutor-service/version.BuildVersion=...".
var (
	BuildVersion = "dev"
	GitSHA       = ""
)

const Service = "chatbot-tutor-service"

type Info struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GitSHA    string `json:"git_sha,omitempty"`
	GoVersion string `json:"go_version"`
}

func Get() Info {
	gitSHA := GitSHA
	if gitSHA == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					gitSHA = s.Value
				}
			}
		}
	}

	return Info{
		Service:   Service,
		Version:   BuildVersion,
		GitSHA:    gitSHA,
		GoVersion: runtime.Version(),
	}
}
