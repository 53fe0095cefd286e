package cngn

import (
	"github.com/pkg/errors"
	"github/chapool/cngn-go/internal/wallet/network"
)

// Response is the envelope of every API answer. Data arrives either as plain JSON
// or as an encrypted string, which the client replaces with the decoded value.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ProviderType string

const (
	ProviderKorapay  ProviderType = "korapay"
	ProviderBudpay   ProviderType = "budpay"
	ProviderBellbank ProviderType = "bellbank"
)

type TrxType string

const (
	TrxTypeFiatBuy       TrxType = "fiat_buy"
	TrxTypeCryptoDeposit TrxType = "crypto_deposit"
	TrxTypeEnairaBuy     TrxType = "enaira_buy"
	TrxTypeFiatRedeem    TrxType = "fiat_redeem"
	TrxTypeWithdraw      TrxType = "withdraw"
	TrxTypeEnairaRedeem  TrxType = "enaira_redeem"
	TrxTypeSwap          TrxType = "swap"
)

type AssetType string

const (
	AssetTypeFiat    AssetType = "fiat"
	AssetTypeWrapped AssetType = "wrapped"
	AssetTypeEnaira  AssetType = "enaira"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusPendingDeposit Status = "pending_deposit"
	StatusFailed         Status = "failed"
	StatusRejected       Status = "rejected"
	StatusCompleted      Status = "completed"
)

type Balance struct {
	AssetType string `json:"asset_type"`
	AssetCode any    `json:"asset_code"`
	Balance   string `json:"balance"`
}

type Pagination struct {
	Count        int  `json:"count"`
	Pages        int  `json:"pages"`
	IsLastPage   bool `json:"isLastPage"`
	NextPage     *int `json:"nextPage"`
	PreviousPage *int `json:"previousPage"`
}

type TransactionPage struct {
	Data       []Transaction `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

type Receiver struct {
	Address       *string `json:"address,omitempty"`
	Bank          *string `json:"bank,omitempty"`
	AccountNumber *string `json:"accountNumber,omitempty"`
}

type Transaction struct {
	ID           string   `json:"id"`
	From         string   `json:"from"`
	Receiver     Receiver `json:"receiver"`
	Amount       string   `json:"amount"`
	Description  string   `json:"description"`
	CreatedAt    string   `json:"createdAt"`
	TrxRef       string   `json:"trx_ref"`
	TrxType      TrxType  `json:"trx_type"`
	Network      string   `json:"network"`
	AssetType    string   `json:"asset_type"`
	AssetSymbol  string   `json:"asset_symbol"`
	BaseTrxHash  string   `json:"base_trx_hash"`
	ExtlTrxHash  string   `json:"extl_trx_hash"`
	ExplorerLink string   `json:"explorer_link"`
	Status       Status   `json:"status"`
}

type Withdraw struct {
	ShouldSaveAddress *bool           `json:"shouldSaveAddress,omitempty"`
	Amount            float64         `json:"amount"`
	Address           string          `json:"address"`
	Network           network.Network `json:"network"`
}

type WithdrawResponse struct {
	TrxRef  string `json:"trxRef"`
	Address string `json:"address"`
}

type RedeemAsset struct {
	Amount        float64 `json:"amount"`
	BankCode      string  `json:"bankCode"`
	AccountNumber string  `json:"accountNumber"`
	SaveDetails   *bool   `json:"saveDetails,omitempty"`
}

type CreateVirtualAccount struct {
	Provider ProviderType `json:"provider"`
	BankCode *string      `json:"bank_code,omitempty"`
}

type VirtualAccount struct {
	AccountReference string `json:"accountReference"`
	AccountNumber    string `json:"accountNumber"`
}

// WalletAddress must carry exactly one address; see UpdateExternalAccount.Validate.
type WalletAddress struct {
	BantuUserID    *string `json:"bantuUserId,omitempty"`
	XBNAddress     *string `json:"xbnAddress,omitempty"`
	BSCAddress     *string `json:"bscAddress,omitempty"`
	ATCAddress     *string `json:"atcAddress,omitempty"`
	PolygonAddress *string `json:"polygonAddress,omitempty"`
	ETHAddress     *string `json:"ethAddress,omitempty"`
	TronAddress    *string `json:"tronAddress,omitempty"`
	BaseAddress    *string `json:"baseAddress,omitempty"`
}

type BankDetails struct {
	BankName          *string `json:"bankName,omitempty"`
	BankAccountName   *string `json:"bankAccountName,omitempty"`
	BankAccountNumber *string `json:"bankAccountNumber,omitempty"`
}

type UpdateExternalAccount struct {
	WalletAddress *WalletAddress `json:"walletAddress,omitempty"`
	BankDetails   *BankDetails   `json:"bankDetails,omitempty"`
}

// ErrAmbiguousWalletAddress is returned when an update names more than one wallet address.
var ErrAmbiguousWalletAddress = errors.New("walletAddress must contain exactly one address")

// Validate checks that WalletAddress, when present, names exactly one address.
func (u *UpdateExternalAccount) Validate() error {
	if u.WalletAddress == nil {
		return nil
	}

	w := u.WalletAddress
	set := 0
	for _, v := range []*string{w.BantuUserID, w.XBNAddress, w.BSCAddress, w.ATCAddress, w.PolygonAddress, w.ETHAddress, w.TronAddress, w.BaseAddress} {
		if v != nil {
			set++
		}
	}

	if set != 1 {
		return errors.Wrapf(ErrAmbiguousWalletAddress, "got %d", set)
	}

	return nil
}

type ExternalAccounts struct {
	XBNAddress        *string `json:"xbn_address"`
	ATCAddress        *string `json:"atc_address"`
	BSCAddress        *string `json:"bsc_address"`
	ETHAddress        *string `json:"eth_address"`
	BaseAddress       *string `json:"base_address"`
	PolygonAddress    *string `json:"polygon_address"`
	TronAddress       *string `json:"tron_address"`
	BankAccountName   *string `json:"bank_account_name"`
	BankName          *string `json:"bank_name"`
	BankAccountNumber *string `json:"bank_account_number"`
}

type Bank struct {
	Name          string `json:"name"`
	Slug          string `json:"slug"`
	Code          string `json:"code"`
	Country       string `json:"country"`
	NIBSSBankCode string `json:"nibss_bank_code"`
}

type Swap struct {
	DestinationNetwork network.Network `json:"destinationNetwork"`
	DestinationAddress string          `json:"destinationAddress"`
	OriginNetwork      network.Network `json:"originNetwork"`
	CallbackURL        *string         `json:"callbackUrl,omitempty"`
}

type SwapResponse struct {
	ReceivableAddress string `json:"receivableAddress"`
	TransactionID     string `json:"transactionId"`
	Reference         string `json:"reference"`
}
