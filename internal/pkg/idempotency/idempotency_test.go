package idempotency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionID_ProducesDistinctValues(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestGenerateKey_IsDeterministic(t *testing.T) {
	first := GenerateKey("DEPOSIT", "acc-1", 100.0)
	second := GenerateKey("DEPOSIT", "acc-1", 100.0)

	assert.Equal(t, first, second)
}

func TestGenerateKey_DiffersByOperationAccountOrAmount(t *testing.T) {
	base := GenerateKey("DEPOSIT", "acc-1", 100.0)

	assert.NotEqual(t, base, GenerateKey("WITHDRAW", "acc-1", 100.0))
	assert.NotEqual(t, base, GenerateKey("DEPOSIT", "acc-2", 100.0))
	assert.NotEqual(t, base, GenerateKey("DEPOSIT", "acc-1", 200.0))
}
