package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/annotate-cli/internal/adapters/driven/api/argilla"
)

var (
	loginURL string
	loginKey string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Configure backend credentials",
	Long: `Stores the backend URL and API key in the config file.

Without flags the command prompts interactively; the API key is read
without echo when run from a terminal.

Examples:
  annotate login
  annotate login --url https://argilla.example.com/api --key YOUR_KEY`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginURL, "url", "", "backend API root")
	loginCmd.Flags().StringVar(&loginKey, "key", "", "backend API key")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	url := loginURL
	if url == "" {
		cmd.Printf("Backend URL [%s]: ", argilla.DefaultBaseURL)
		url = readLine()
		if url == "" {
			url = argilla.DefaultBaseURL
		}
	}

	key := loginKey
	if key == "" {
		cmd.Print("API key: ")
		key = readPassword()
		cmd.Println()
	}
	if key == "" {
		return errors.New("an API key is required")
	}

	if err := configStore.Set("api.url", url); err != nil {
		return fmt.Errorf("saving backend URL: %w", err)
	}
	if err := configStore.Set("api.key", key); err != nil {
		return fmt.Errorf("saving API key: %w", err)
	}

	cmd.Printf("Credentials saved to %s\n", configStore.Path())
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine() string {
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read the key without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	return readLine()
}
