package cmdshared

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// PromptYesNo writes prompt to out and reads a yes/no answer from in, defaulting to yes
func PromptYesNo(in io.Reader, out io.Writer, prompt string) (bool, error) {
	_, _ = fmt.Fprint(out, prompt)
	if viper.GetBool("non-interactive") {
		_, _ = fmt.Fprintln(out, "Y (non-interactive mode)")
		return true, nil
	}
	answer, err := bufio.NewReader(in).ReadString('\n')
	// A closed stdin takes the default answer
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to prompt user: %w", err)
	}

	ansNormal := strings.ToLower(strings.TrimSpace(answer))
	if len(ansNormal) > 0 && ansNormal[0] == 'n' {
		return false, nil
	}
	return true, nil
}

// IsEmptyDir returns true if path doesn't exist or is an empty directory
func IsEmptyDir(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	return false, err
}
