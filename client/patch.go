package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopfront/paypal-integration-api/models"
	"github.com/shopspring/decimal"
)

// Patch paths on the payment resource.
const (
	shippingAddressPatchPath = "/transactions/0/item_list/shipping_address"
	amountPatchPath          = "/transactions/0/amount"
)

// NewPaymentAddressPatch builds the patch replacing the payment's shipping
// address.
func NewPaymentAddressPatch(address models.ShippingAddress) models.Patch {
	return models.Patch{
		Operation: "replace",
		Path:      shippingAddressPatchPath,
		Value:     address,
	}
}

// NewPaymentAmountPatch builds the patch replacing the transaction amount.
func NewPaymentAmountPatch(amount models.Amount) models.Patch {
	return models.Patch{
		Operation: "replace",
		Path:      amountPatchPath,
		Value:     amount,
	}
}

// PatchPaymentAddressAndAmount reconciles an express checkout payment with
// the shipping address and amount as they stand after the checkout steps the
// buyer completed outside PayPal. The two patches are submitted as one atomic
// request, address before amount: PayPal validates the total against the
// shipping destination it has at that point in the request.
func (c *Client) PatchPaymentAddressAndAmount(ctx context.Context, credentials models.Credentials, paymentID string, address models.ShippingAddress, amount models.Amount) error {
	total, err := decimal.NewFromString(amount.Total)
	if err != nil {
		return fmt.Errorf("error parsing amount total [%s]: [%v]", amount.Total, err)
	}
	amount.Total = total.StringFixed(2)

	patches := []models.Patch{
		NewPaymentAddressPatch(address),
		NewPaymentAmountPatch(amount),
	}

	err = c.Send(ctx, credentials, http.MethodPatch, "/v1/payments/payment/"+paymentID, patches, nil, AttributionIDExpressCheckout)
	if err != nil {
		log.Error(fmt.Errorf("error patching payment for express checkout: [%v]", err),
			log.Data{"payment_id": paymentID, "shop_id": credentials.ShopID})
		return err
	}

	return nil
}
