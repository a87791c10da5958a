package capability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type greeter interface {
	Greet(name string) string
}

type shouter interface {
	Shout(name string) string
}

type politeGreeter struct{}

func (politeGreeter) Greet(name string) string { return "Hello, " + name }

type loudGreeter struct{}

func (loudGreeter) Greet(name string) string { return "HELLO, " + name }
func (loudGreeter) Shout(name string) string { return name + "!!!" }

func TestDefine_DerivesMethodSignatures(t *testing.T) {
	c := Define[greeter]("greeting", "Greets people")

	require.Equal(t, "greeting", c.Name)
	require.Len(t, c.Methods, 1)
	require.Equal(t, "Greet", c.Methods[0].Name)
	require.Equal(t, []string{"string"}, c.Methods[0].Params)
	require.Equal(t, []string{"string"}, c.Methods[0].Returns)

	sig, ok := c.Operation("Greet")
	require.True(t, ok)
	require.Equal(t, "Greet", sig.Name)

	_, ok = c.Operation("Whisper")
	require.False(t, ok)
}

func TestRegisterContract_IdempotentForSameType(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.RegisterContract(Define[greeter]("greeting", "v1")))
	require.NoError(t, reg.RegisterContract(Define[greeter]("greeting", "again")))
	require.Equal(t, []string{"greeting"}, reg.List())
}

func TestRegisterContract_ConflictingTypeFails(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.RegisterContract(Define[greeter]("greeting", "")))
	err := reg.RegisterContract(Define[shouter]("greeting", ""))
	require.ErrorIs(t, err, ErrContractConflict)
}

func TestRegisterContract_RequiresNameAndInterface(t *testing.T) {
	reg := NewRegistry()

	require.Error(t, reg.RegisterContract(Define[greeter]("", "unnamed")))
}

func TestRegisterVariant_ChecksConformance(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterContract(Define[shouter]("shouting", "")))

	require.ErrorIs(t, reg.RegisterVariant("shouting", "polite", politeGreeter{}), ErrContractMismatch)
	require.NoError(t, reg.RegisterVariant("shouting", "loud", loudGreeter{}))

	require.ErrorIs(t, reg.RegisterVariant("missing", "loud", loudGreeter{}), ErrNotRegistered)
}

func TestResolve(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterContract(Define[greeter]("greeting", "")))
	require.NoError(t, reg.RegisterVariant("greeting", "polite", politeGreeter{}))
	require.NoError(t, reg.RegisterVariant("greeting", "loud", loudGreeter{}))

	entry, err := reg.Resolve("greeting", "loud")
	require.NoError(t, err)
	require.IsType(t, loudGreeter{}, entry.Value)

	_, err = reg.Resolve("greeting", "whispering")
	require.Error(t, err)

	_, err = reg.Resolve("missing", "loud")
	require.ErrorIs(t, err, ErrNotRegistered)
}

func TestConforms(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterContract(Define[greeter]("greeting", "")))

	require.NoError(t, reg.Conforms("greeting", loudGreeter{}))
	require.ErrorIs(t, reg.Conforms("greeting", 42), ErrContractMismatch)
	require.ErrorIs(t, reg.Conforms("greeting", nil), ErrContractMismatch)
	require.ErrorIs(t, reg.Conforms("missing", loudGreeter{}), ErrNotRegistered)
}

func TestDetect_ReturnsOnlyHonoredCapabilities(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterContract(Define[greeter]("greeting", "")))
	require.NoError(t, reg.RegisterContract(Define[shouter]("shouting", "")))

	require.Equal(t, []string{"greeting"}, reg.Detect(politeGreeter{}))
	require.Equal(t, []string{"greeting", "shouting"}, reg.Detect(loudGreeter{}))
	require.Nil(t, reg.Detect(nil))
	require.Empty(t, reg.Detect("not a greeter"))
}

func TestVariants_ReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.RegisterContract(Define[greeter]("greeting", "")))
	require.NoError(t, reg.RegisterVariant("greeting", "polite", politeGreeter{}))

	entries := reg.Variants("greeting")
	require.Len(t, entries, 1)

	entries[0].Name = "mutated"
	require.Equal(t, "polite", reg.Variants("greeting")[0].Name)

	require.Nil(t, reg.Variants("missing"))
}
