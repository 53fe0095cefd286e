package wallet

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/cngn-go/internal/config"
	"github/chapool/cngn-go/internal/util"
	"github/chapool/cngn-go/internal/util/command"
	"github/chapool/cngn-go/internal/wallet"
)

const (
	networkFlag          = "network"
	jsonFlag             = "json"
	mnemonicFlag         = "mnemonic"
	passphrasePromptFlag = "passphrase-prompt"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("wallet",
		newGenerate(),
		newDerive(),
	)
}

// newService builds only the wallet service, wallet commands run offline and never need the cNGN client.
//
//nolint:ireturn
func newService() wallet.Service {
	cfg := config.DefaultServiceConfigFromEnv()
	util.InitLogger(cfg.Logger)

	return wallet.NewService(cfg.Wallet)
}

type walletOutput struct {
	Mnemonic   string `json:"mnemonic"`
	PrivateKey string `json:"privateKey"`
	PublicKey  string `json:"publicKey,omitempty"`
	Address    string `json:"address"`
	Network    string `json:"network"`
}

// printRecord writes record to out. publicKey is optional and printed hex encoded.
func printRecord(out io.Writer, record *wallet.Record, publicKey []byte, asJSON bool) error {
	o := walletOutput{
		Mnemonic:   record.Mnemonic,
		PrivateKey: record.PrivateKeyHex(),
		PublicKey:  hex.EncodeToString(publicKey),
		Address:    record.Address,
		Network:    record.Network.String(),
	}

	if asJSON {
		raw, err := json.MarshalIndent(o, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal wallet")
		}

		_, err = fmt.Fprintln(out, string(raw))
		return err
	}

	if _, err := fmt.Fprintf(out, "Network:     %s\nAddress:     %s\n", o.Network, o.Address); err != nil {
		return err
	}

	if o.PublicKey != "" {
		if _, err := fmt.Fprintf(out, "Public key:  %s\n", o.PublicKey); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(out, "Private key: %s\nMnemonic:    %s\n", o.PrivateKey, o.Mnemonic)

	return err
}
