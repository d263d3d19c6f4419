package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/searchbot/searchbot/internal/browser"
)

// ProfilesCmd lists the Chrome profiles found on this machine.
func ProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List detected Chrome profiles",
		Run: func(cmd *cobra.Command, args []string) {
			enum := browser.NewEnumerator(ServerConfig.Browser.ChromeUserDataDir)
			profiles := enum.List()
			if len(profiles) == 0 {
				fmt.Println("No Chrome profiles found")
				return
			}
			for _, p := range profiles {
				fmt.Printf("%-16s %s\n", p.Directory, p.Name)
			}
		},
	}
}
