package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"theorem-converter/internal/domain"
)

// fakeGenerator records the last prompt and parameters it was called with.
type fakeGenerator struct {
	text   string
	err    error
	calls  int
	prompt string
	params domain.GenerationParams
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, params domain.GenerationParams) (string, error) {
	f.calls++
	f.prompt = prompt
	f.params = params
	return f.text, f.err
}

// fakeProviderError satisfies ProviderFault the way bedrock.APIError does.
type fakeProviderError struct {
	code    string
	message string
}

func (e *fakeProviderError) Error() string        { return e.code + ": " + e.message }
func (e *fakeProviderError) ErrorCode() string    { return e.code }
func (e *fakeProviderError) ErrorMessage() string { return e.message }

func newTestService(t *testing.T, g TextGenerator) *ConvertService {
	t.Helper()
	svc, err := NewConvertService(g)
	require.NoError(t, err)
	return svc
}

func TestNewConvertService_ValidatesDependency(t *testing.T) {
	_, err := NewConvertService(nil)
	require.Error(t, err)
}

func TestConvert_EmbedsStatementVerbatim(t *testing.T) {
	gen := &fakeGenerator{text: "theorem t : True := trivial"}
	svc := newTestService(t, gen)

	statement := "The golden ratio is irrational."
	_, err := svc.Convert(context.Background(), ConvertInput{Statement: statement})
	require.NoError(t, err)
	require.Equal(t, 1, gen.calls)

	require.Contains(t, gen.prompt, promptStatementLabel+statement)
	require.True(t, strings.HasPrefix(gen.prompt, promptIntro))
	require.True(t, strings.HasSuffix(gen.prompt, promptTrailer))

	before, after, found := strings.Cut(gen.prompt, statement)
	require.True(t, found)
	require.True(t, strings.HasSuffix(before, promptStatementLabel))
	require.Equal(t, "\n\n"+promptTrailer, after)
}

func TestConvert_UsesFixedGenerationParams(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	svc := newTestService(t, gen)

	_, err := svc.Convert(context.Background(), ConvertInput{Statement: "s"})
	require.NoError(t, err)
	require.Equal(t, domain.GenerationParams{MaxGenLen: 300, Temperature: 0.2, TopP: 0.95}, gen.params)
}

func TestConvert_TrimsGeneration(t *testing.T) {
	gen := &fakeGenerator{text: "  foo  "}
	svc := newTestService(t, gen)

	out, err := svc.Convert(context.Background(), ConvertInput{Statement: "s"})
	require.NoError(t, err)
	require.Equal(t, "foo", out.FormalStatement)
}

func TestConvert_EmptyGenerationYieldsSentinel(t *testing.T) {
	for name, text := range map[string]string{
		"empty":      "",
		"whitespace": "  \n\t ",
	} {
		t.Run(name, func(t *testing.T) {
			gen := &fakeGenerator{text: text}
			svc := newTestService(t, gen)

			out, err := svc.Convert(context.Background(), ConvertInput{Statement: "s"})
			require.NoError(t, err)
			require.Equal(t, FallbackStatement, out.FormalStatement)
		})
	}
}

func TestConvert_ProviderFaultMapsToProviderError(t *testing.T) {
	gen := &fakeGenerator{err: &fakeProviderError{code: "ThrottlingException", message: "rate exceeded"}}
	svc := newTestService(t, gen)

	_, err := svc.Convert(context.Background(), ConvertInput{Statement: "s"})
	require.Error(t, err)

	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, ErrorProvider, uerr.Code)

	var fault ProviderFault
	require.ErrorAs(t, err, &fault)
	require.Equal(t, "ThrottlingException", fault.ErrorCode())
	require.Equal(t, "rate exceeded", fault.ErrorMessage())
}

func TestConvert_UnexpectedErrorMapsToInternal(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("dial tcp: connection refused")}
	svc := newTestService(t, gen)

	_, err := svc.Convert(context.Background(), ConvertInput{Statement: "s"})
	require.Error(t, err)

	var uerr *Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, ErrorInternal, uerr.Code)
	require.ErrorContains(t, err, "connection refused")
}

func TestConvert_OneGeneratorCallPerInvocation(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	svc := newTestService(t, gen)

	_, err := svc.Convert(context.Background(), ConvertInput{Statement: "s"})
	require.Error(t, err)
	require.Equal(t, 1, gen.calls)
}

func TestSampleStatements_ReturnsCopy(t *testing.T) {
	first := SampleStatements()
	require.Len(t, first, 5)
	require.Equal(t, "The golden ratio is irrational.", first[0])

	first[0] = "mutated"
	require.Equal(t, "The golden ratio is irrational.", SampleStatements()[0])
}
