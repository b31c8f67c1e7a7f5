package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainKnownOperator(t *testing.T) {
	text, err := Explain("<<")
	require.NoError(t, err)
	assert.Contains(t, text, "dominates")
}

func TestExplainUnknownOperatorSuggests(t *testing.T) {
	_, err := Explain("<<#")
	require.NoError(t, err) // "<<#" is itself a valid operator
	_, err = Explain("<<<#")
	require.Error(t, err)
	var unknown *ErrUnknownOperator
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "<<<#", unknown.Operator)
	assert.NotEmpty(t, unknown.Suggestion)
}

func TestSymbolsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, Symbols())
	assert.Contains(t, Symbols(), "<#")
}

func TestAllPairsSymbolWithText(t *testing.T) {
	all := All()
	assert.Equal(t, len(Symbols()), len(all))
	assert.Contains(t, all[0], Symbols()[0])
}
