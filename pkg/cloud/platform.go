// Package cloud detects which public cloud the current host runs on by
// probing the link-local instance metadata service (IMDS).
package cloud

// Platform identifies a cloud provider.
type Platform string

const (
	// AWS indicates the host is an EC2 instance.
	AWS Platform = "aws"
	// Azure indicates the host is an Azure VM.
	Azure Platform = "azure"
	// Unknown indicates no supported provider was detected.
	Unknown Platform = "unknown"
)

// String returns the string representation of the platform.
func (p Platform) String() string {
	return string(p)
}

// DisplayName returns a human-readable name for the platform.
func (p Platform) DisplayName() string {
	switch p {
	case AWS:
		return "Amazon Web Services"
	case Azure:
		return "Microsoft Azure"
	default:
		return "Unknown"
	}
}

// ParsePlatform parses a platform name as used in configuration files.
// Returns Unknown for unrecognized names.
func ParsePlatform(s string) Platform {
	switch s {
	case "aws", "AWS":
		return AWS
	case "azure", "Azure":
		return Azure
	default:
		return Unknown
	}
}
