package synth

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCashPayment_RedondeaADosDecimales(t *testing.T) {
	got := cashPayment(decimal.NewFromInt(1000), 0.123456)
	assert.Equal(t, "123.46", got.StringFixed(2))
}

func TestCashPayment_NuncaAlcanzaLaFactura(t *testing.T) {
	invoice := decimal.NewFromInt(2999)
	got := cashPayment(invoice, 0.9999999999999999)

	assert.True(t, got.LessThan(invoice))
	assert.Equal(t, "2998.99", got.StringFixed(2))
}
