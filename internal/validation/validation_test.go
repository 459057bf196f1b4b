package validation

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/fairflip/coinflip/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlipCountValid(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"2", 2},
		{"3", 3},
		{"50", 50},
		{"100", 100},
		{"007", 7}, // leading zeros are still base-10
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, err := ParseFlipCount(tt.raw)

			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestParseFlipCountInvalid(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantName string
	}{
		{"letters", "abc", errs.NameInput},
		{"empty", "", errs.NameInput},
		{"fractional", "3.5", errs.NameInput},
		{"scientific notation", "1e2", errs.NameInput},
		{"trailing garbage", "5x", errs.NameInput},
		{"whitespace", " 5", errs.NameInput},
		{"below minimum", "1", errs.NameRange},
		{"zero", "0", errs.NameRange},
		{"negative", "-1", errs.NameRange},
		{"at exclusive maximum", "101", errs.NameRange},
		{"far above maximum", "100000", errs.NameRange},
		{"overflows int64", "99999999999999999999", errs.NameRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFlipCount(tt.raw)
			require.Error(t, err)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.wantName, httpErr.Name)
			assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
		})
	}
}

func TestParseFlipCountAcceptsFullRange(t *testing.T) {
	for n := MinFlips; n < MaxFlips; n++ {
		got, err := ParseFlipCount(strconv.Itoa(n))
		require.NoError(t, err)
		require.Equal(t, n, got)
	}
}
