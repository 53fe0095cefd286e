package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostCreateWalletPayload is the body of POST /api/v1/wallets.
// Without a mnemonic a fresh one is generated; the passphrase only applies to a supplied mnemonic.
type PostCreateWalletPayload struct {
	// Required: true
	Network *string `json:"network"`

	Mnemonic *string `json:"mnemonic,omitempty"`

	Passphrase *string `json:"passphrase,omitempty"`
}

type GeneratedWallet struct {
	Address *string `json:"address"`

	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"createdAt"`

	Mnemonic *string `json:"mnemonic"`

	Network *string `json:"network"`

	// hex encoded, no 0x prefix
	PrivateKey *string `json:"privateKey"`
}

// Validate validates this generated wallet
func (m *GeneratedWallet) Validate(formats strfmt.Registry) error {
	var res []error

	for name, value := range map[string]*string{
		"address":    m.Address,
		"mnemonic":   m.Mnemonic,
		"network":    m.Network,
		"privateKey": m.PrivateKey,
	} {
		if err := validate.Required(name, "body", value); err != nil {
			res = append(res, err)
		}
	}

	if err := m.validateCreatedAt(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}

	return nil
}

func (m *GeneratedWallet) validateCreatedAt(formats strfmt.Registry) error {
	if err := validate.Required("createdAt", "body", m.CreatedAt); err != nil {
		return err
	}

	if err := validate.FormatOf("createdAt", "body", "date-time", m.CreatedAt.String(), formats); err != nil {
		return err
	}

	return nil
}

type PostCreateWalletResponse struct {
	Success bool `json:"success"`

	Data *GeneratedWallet `json:"data"`
}

// Validate validates this post create wallet response
func (m *PostCreateWalletResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("data", "body", m.Data); err != nil {
		return err
	}

	if err := m.Data.Validate(formats); err != nil {
		if ve, ok := err.(*errors.Validation); ok {
			return ve.ValidateName("data")
		}
		return err
	}

	return nil
}

type NetworkItem struct {
	Curve *string `json:"curve"`

	DerivationPath *string `json:"derivationPath"`

	Encoding *string `json:"encoding"`

	ID *string `json:"id"`

	Name *string `json:"name"`

	// Validated reports whether generated addresses are checked before being returned.
	Validated *bool `json:"validated"`
}

type GetNetworksResponse struct {
	Success bool `json:"success"`

	Data []*NetworkItem `json:"data"`
}
