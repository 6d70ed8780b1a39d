package doctor

import (
	"regexp"

	"github.com/jaspreet-dot-casa/vm-setup/pkg/sysexec"
)

// groupDefinition maps a group to its check IDs.
type groupDefinition struct {
	Name        string
	Description string
	CheckIDs    []string
}

var groupDefinitions = map[string]groupDefinition{
	GroupSystem: {
		Name:        "System",
		Description: "Package management and privilege escalation",
		CheckIDs:    []string{IDAptGet, IDDpkg, IDSudo, IDBash},
	},
	GroupDownload: {
		Name:        "Download Tools",
		Description: "Needed to fetch vendor CLI installers",
		CheckIDs:    []string{IDCurl, IDUnzip},
	},
	GroupCloud: {
		Name:        "Cloud CLIs",
		Description: "Installed automatically for the detected platform",
		CheckIDs:    []string{IDAWSCLI, IDAzCLI},
	},
}

// GroupIDs returns the group identifiers in display order.
func GroupIDs() []string {
	return []string{GroupSystem, GroupDownload, GroupCloud}
}

// GetGroupDefinition returns the definition for a group ID.
func GetGroupDefinition(groupID string) (groupDefinition, bool) {
	def, ok := groupDefinitions[groupID]
	return def, ok
}

// fixCommands defines fix commands for each missing tool. All targets are
// Debian/Ubuntu, so everything funnels through apt except the cloud CLIs,
// which vm-setup installs itself.
var fixCommands = map[string]*FixCommand{
	IDSudo: {
		Description: "Install sudo (run as root)",
		Command:     "apt-get install -y sudo",
		Sudo:        false,
	},
	IDCurl: {
		Description: "Install curl via apt",
		Command:     "sudo apt-get install -y curl",
		Sudo:        true,
	},
	IDUnzip: {
		Description: "Install unzip via apt",
		Command:     "sudo apt-get install -y unzip",
		Sudo:        true,
	},
	IDAWSCLI: {
		Description: "Install via the provisioner (vendor bundle)",
		Command:     "vmsetup provision",
		Sudo:        false,
	},
	IDAzCLI: {
		Description: "Install via the provisioner (vendor bootstrap)",
		Command:     "vmsetup provision",
		Sudo:        false,
	},
}

// GetFixCommand returns the fix command for a tool, or nil.
func GetFixCommand(toolID string) *FixCommand {
	return fixCommands[toolID]
}

// checkTool checks if a tool is installed and gets its version.
func checkTool(exec sysexec.Executor, id, name, desc string, versionArgs []string, versionRegex *regexp.Regexp) Check {
	check := Check{
		ID:          id,
		Name:        name,
		Description: desc,
		FixCommand:  GetFixCommand(id),
	}

	path, err := exec.LookPath(id)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	if len(versionArgs) == 0 {
		check.Status = StatusOK
		check.Message = "installed"
		return check
	}

	output, err := exec.Run(path, versionArgs...)
	if err != nil {
		// Tool exists but version check failed - still consider it OK
		check.Status = StatusOK
		check.Message = "installed (version unknown)"
		return check
	}

	version := extractVersion(output, versionRegex)
	if version != "" {
		check.Status = StatusOK
		check.Message = version
	} else {
		check.Status = StatusOK
		check.Message = "installed"
	}

	return check
}

// extractVersion extracts a version string from command output.
func extractVersion(output string, regex *regexp.Regexp) string {
	if regex == nil {
		defaultRegex := regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9]+)?)`)
		matches := defaultRegex.FindStringSubmatch(output)
		if len(matches) >= 2 {
			return matches[1]
		}
		return ""
	}

	matches := regex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// CheckAptGet checks if apt-get is installed.
func CheckAptGet(exec sysexec.Executor) Check {
	return checkTool(exec, IDAptGet, "apt-get", "Debian/Ubuntu package manager",
		[]string{"--version"}, regexp.MustCompile(`apt (\d+\.\d+(?:\.\d+)?)`))
}

// CheckDpkg checks if dpkg is installed.
func CheckDpkg(exec sysexec.Executor) Check {
	return checkTool(exec, IDDpkg, "dpkg", "Debian package database",
		[]string{"--version"}, regexp.MustCompile(`version (\d+\.\d+(?:\.\d+)?)`))
}

// CheckSudo checks if sudo is installed.
func CheckSudo(exec sysexec.Executor) Check {
	return checkTool(exec, IDSudo, "sudo", "Privilege escalation for install steps",
		[]string{"--version"}, regexp.MustCompile(`Sudo version (\d+\.\d+(?:\.\d+)?)`))
}

// CheckBash checks if bash is installed.
func CheckBash(exec sysexec.Executor) Check {
	return checkTool(exec, IDBash, "bash", "Runs vendor bootstrap scripts",
		[]string{"--version"}, regexp.MustCompile(`version (\d+\.\d+(?:\.\d+)?)`))
}

// CheckCurl checks if curl is installed.
func CheckCurl(exec sysexec.Executor) Check {
	return checkTool(exec, IDCurl, "curl", "HTTP client for vendor downloads",
		[]string{"--version"}, regexp.MustCompile(`curl (\d+\.\d+(?:\.\d+)?)`))
}

// CheckUnzip checks if unzip is installed.
func CheckUnzip(exec sysexec.Executor) Check {
	return checkTool(exec, IDUnzip, "unzip", "Extracts the AWS CLI bundle",
		[]string{"-v"}, regexp.MustCompile(`UnZip (\d+\.\d+(?:\.\d+)?)`))
}

// CheckAWSCLI checks if the AWS CLI is installed.
func CheckAWSCLI(exec sysexec.Executor) Check {
	check := checkTool(exec, IDAWSCLI, "AWS CLI", "Amazon Web Services command line",
		[]string{"--version"}, regexp.MustCompile(`aws-cli/(\d+\.\d+\.\d+)`))
	// Absence is expected off-EC2; soften the status.
	if check.Status == StatusMissing {
		check.Status = StatusWarning
		check.Message = "not installed (only needed on AWS)"
	}
	return check
}

// CheckAzCLI checks if the Azure CLI is installed.
func CheckAzCLI(exec sysexec.Executor) Check {
	check := checkTool(exec, IDAzCLI, "Azure CLI", "Microsoft Azure command line",
		[]string{"version"}, regexp.MustCompile(`"azure-cli": "(\d+\.\d+\.\d+)"`))
	if check.Status == StatusMissing {
		check.Status = StatusWarning
		check.Message = "not installed (only needed on Azure)"
	}
	return check
}
