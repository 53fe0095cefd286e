package wallet

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/cngn-go/internal/wallet/network"
	"golang.org/x/term"
)

func newDerive() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derives the wallet of an existing mnemonic",
		Long: `Derives the wallet of an existing BIP-39 mnemonic for the given network.

Derivation is deterministic: the same mnemonic, passphrase and network always
yield the same key and address. The public key is printed hex encoded
(65 byte uncompressed secp256k1 or 32 byte ed25519).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := network.Parse(cmd.Flag(networkFlag).Value.String())
			if err != nil {
				return err
			}

			mnemonic := strings.TrimSpace(cmd.Flag(mnemonicFlag).Value.String())
			if mnemonic == "" {
				return errors.New("--mnemonic is required")
			}

			asJSON, err := cmd.Flags().GetBool(jsonFlag)
			if err != nil {
				return err
			}

			prompt, err := cmd.Flags().GetBool(passphrasePromptFlag)
			if err != nil {
				return err
			}

			var passphrase string
			if prompt {
				passphrase, err = promptPassphrase(cmd, "Enter BIP-39 passphrase: ")
				if err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			s := newService()

			record, err := s.WalletFromMnemonic(ctx, mnemonic, passphrase, n)
			if err != nil {
				return err
			}
			defer record.Clear()

			pair, err := s.DeriveKeyPair(ctx, mnemonic, passphrase, n)
			if err != nil {
				return err
			}
			defer pair.Clear()

			return printRecord(cmd.OutOrStdout(), record, pair.PublicKey, asJSON)
		},
	}

	cmd.Flags().StringP(networkFlag, "n", network.ETH.String(), "Network to derive the wallet for")
	cmd.Flags().StringP(mnemonicFlag, "m", "", "BIP-39 mnemonic to derive from")
	cmd.Flags().Bool(passphrasePromptFlag, false, "Prompt for a BIP-39 passphrase (input is hidden)")
	cmd.Flags().Bool(jsonFlag, false, "Print the wallet as JSON")

	return cmd
}

// promptPassphrase reads a passphrase without echoing it.
func promptPassphrase(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)

	passphraseBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", errors.Wrap(err, "failed to read passphrase")
	}
	defer clear(passphraseBytes)

	return string(passphraseBytes), nil
}
