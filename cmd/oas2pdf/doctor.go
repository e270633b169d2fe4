package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	oas2pdf "github.com/alnah/go-oas2pdf"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Bundler  toolInfo   `json:"bundler"`
	Chrome   toolInfo   `json:"chrome"`
	Wkhtml   toolInfo   `json:"wkhtmltopdf"`
	Env      envInfo    `json:"environment"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// toolInfo holds detection results for one external tool.
type toolInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks using the same locator the
// conversion run uses.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
	}

	tools := oas2pdf.NewLocator(oas2pdf.DefaultProbes()).Locate("", "")
	checkBundler(result, tools)
	checkRenderers(result, tools)
	checkEnvironment(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkBundler verifies that ReDoc can be invoked.
func checkBundler(result *doctorResult, tools oas2pdf.Toolset) {
	switch {
	case tools.Npx != "":
		result.Bundler = probeTool(tools.Npx)
	case tools.Redoc != "":
		result.Bundler = probeTool(tools.Redoc)
	default:
		result.Errors = append(result.Errors,
			"neither npx nor redoc-cli found. Install Node LTS or `npm i -g redoc-cli`")
	}
}

// checkRenderers verifies that at least one PDF backend exists.
func checkRenderers(result *doctorResult, tools oas2pdf.Toolset) {
	if tools.Chrome != "" {
		result.Chrome = probeTool(tools.Chrome)
	}
	if tools.Wkhtml != "" {
		result.Wkhtml = probeTool(tools.Wkhtml)
	}

	switch {
	case !result.Chrome.Found && !result.Wkhtml.Found:
		result.Errors = append(result.Errors,
			"no PDF renderer found. Install Chrome/Chromium or wkhtmltopdf")
	case !result.Chrome.Found:
		result.Warnings = append(result.Warnings,
			"Chrome not found; wkhtmltopdf will be used for every file")
	}
}

// checkEnvironment detects container and CI environments. Headless Chrome
// often refuses to start sandboxed inside containers, so a detection plus a
// wkhtmltopdf suggestion beats a late render failure.
func checkEnvironment(result *doctorResult) {
	result.Env.Container, result.Env.ContainerHint = isContainer()

	ciVars := []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}

	if (result.Env.Container || result.Env.CI) && result.Chrome.Found && !result.Wkhtml.Found {
		result.Warnings = append(result.Warnings,
			"container/CI detected with Chrome as the only renderer; install wkhtmltopdf as a fallback")
	}
}

// isContainer detects if running in a container environment.
// Returns (isContainer, hint) where hint names the detected signal.
func isContainer() (bool, string) {
	if os.Getenv("OAS2PDF_CONTAINER") == "1" {
		return true, "OAS2PDF_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	// Podman, systemd-nspawn and friends set this.
	if v := os.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// probeTool confirms the binary still exists and asks it for its version.
func probeTool(path string) toolInfo {
	info := toolInfo{Path: path}
	if _, err := os.Stat(path); err != nil {
		return info
	}
	info.Found = true

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- path came from discovery
	if err == nil {
		info.Version = firstLine(string(out))
	}
	return info
}

// firstLine trims version output to its first line.
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// checkSystem verifies system requirements.
func checkSystem(result *doctorResult) {
	tmpDir := os.TempDir()
	testFile := filepath.Join(tmpDir, "oas2pdf-doctor-test")
	if err := os.WriteFile(testFile, []byte("test"), 0600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Temp directory not writable: %s", tmpDir))
	} else {
		_ = os.Remove(testFile)
		result.System.TempWritable = true
	}
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "oas2pdf doctor")
	fmt.Fprintln(w)

	printTool(w, "ReDoc bundler", r.Bundler)
	printTool(w, "Chrome/Chromium", r.Chrome)
	printTool(w, "wkhtmltopdf", r.Wkhtml)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

// printTool prints one tool section.
func printTool(w io.Writer, label string, info toolInfo) {
	fmt.Fprintln(w, label)
	if info.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", info.Path)
		if info.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", info.Version)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)
}
