package services

import (
	"regexp"

	"payinfo/internal/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	// ReferenceIDRegex is the accepted shape of a reference id.
	ReferenceIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

	accountAddressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	// Positive decimal with up to 18 fractional digits.
	amountRegex = regexp.MustCompile(`^(0|[1-9][0-9]*)(\.[0-9]{1,18})?$`)
	zeroAmount  = regexp.MustCompile(`^0(\.0+)?$`)
)

// ValidatePaymentInfo checks the document a merchant wants to publish.
func ValidatePaymentInfo(info models.PaymentInfo) error {
	return validation.ValidateStruct(&info,
		validation.Field(&info.ReferenceID, validation.Required, validation.Match(ReferenceIDRegex)),
		validation.Field(&info.Receiver, validation.By(func(value interface{}) error {
			r, _ := value.(models.Receiver)
			return validateReceiver(r)
		})),
		validation.Field(&info.Action, validation.By(func(value interface{}) error {
			a, _ := value.(models.PaymentAction)
			return validateAction(a)
		})),
	)
}

func validateReceiver(r models.Receiver) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AccountAddress, validation.Required, validation.Match(accountAddressRegex).Error("must be a 0x-prefixed 20 byte hex address")),
		validation.Field(&r.BusinessData, validation.By(func(value interface{}) error {
			b, _ := value.(models.BusinessData)
			return validation.ValidateStruct(&b,
				validation.Field(&b.Name, validation.Required, validation.Length(1, 256)),
				validation.Field(&b.LegalName, validation.Length(0, 256)),
				validation.Field(&b.ImageURL, is.URL),
			)
		})),
	)
}

func validateAction(a models.PaymentAction) error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Amount,
			validation.Required,
			validation.Match(amountRegex).Error("must be a decimal number"),
			validation.By(func(value interface{}) error {
				if s, _ := value.(string); zeroAmount.MatchString(s) {
					return validation.NewError("validation_amount_positive", "must be greater than zero")
				}
				return nil
			}),
		),
		validation.Field(&a.Currency,
			validation.Required,
			validation.In(models.CurrencyCUSD, models.CurrencyCEUR, models.CurrencyCREAL, models.CurrencyCELO),
		),
		validation.Field(&a.Action, validation.Required, validation.In(models.ActionCharge)),
		validation.Field(&a.Timestamp, validation.Min(int64(0))),
	)
}
