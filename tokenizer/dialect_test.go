package tokenizer

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDefaultDialect(t *testing.T) {
	d := NewDialect()

	assert.True(t, d.IsKeyword("AND"))
	assert.True(t, d.IsKeyword("and"))
	assert.True(t, d.IsKeyword("Case"))
	assert.False(t, d.IsKeyword("amount"))

	assert.True(t, d.IsFunction("CURRENT_DATE"))
	assert.True(t, d.IsFunction("current_timestamp"))
	assert.False(t, d.IsFunction("order_total"))

	// words spelled like functions stay columns unless followed by a call
	assert.False(t, d.IsFunction("month"))
	assert.False(t, d.IsFunction("SUM"))
}

func TestDialectExtension(t *testing.T) {
	d := NewDialect().
		WithFunctions("my_platform_udf").
		WithKeywords("QUALIFY")

	assert.True(t, d.IsFunction("MY_PLATFORM_UDF"))
	assert.True(t, d.IsKeyword("qualify"))

	// built-ins are kept
	assert.True(t, d.IsFunction("CURRENT_DATE"))
	assert.True(t, d.IsKeyword("AND"))
}

func TestDialectIgnoresEmptyNames(t *testing.T) {
	d := NewDialect().WithFunctions("").WithKeywords("")

	assert.False(t, d.IsFunction(""))
	assert.False(t, d.IsKeyword(""))
}
