package eutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogic(t *testing.T) {
	tests := []struct {
		input   string
		want    Logic
		wantErr bool
	}{
		{input: "AND", want: LogicAnd},
		{input: "or", want: LogicOr},
		{input: " Custom ", want: LogicCustom},
		{input: "NOT", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogic(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildTerm(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		logic    Logic
		custom   string
		want     string
		wantErr  error
	}{
		{
			name:     "AND join",
			keywords: []string{"cancer", "therapy"},
			logic:    LogicAnd,
			want:     "cancer AND therapy",
		},
		{
			name:     "OR join",
			keywords: []string{"cancer", "health", "nutrition"},
			logic:    LogicOr,
			want:     "cancer OR health OR nutrition",
		},
		{
			name:     "single keyword",
			keywords: []string{"cancer"},
			logic:    LogicAnd,
			want:     "cancer",
		},
		{
			name:   "custom expression passthrough",
			logic:  LogicCustom,
			custom: "(cancer OR tumor) AND immunotherapy",
			want:   "(cancer OR tumor) AND immunotherapy",
		},
		{
			name:    "custom without expression",
			logic:   LogicCustom,
			wantErr: ErrMissingCustomExpr,
		},
		{
			name:    "no keywords",
			logic:   LogicAnd,
			wantErr: ErrNoKeywords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildTerm(tt.keywords, tt.logic, tt.custom)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2022/01/01"))
	assert.NoError(t, ValidateDate("2023/12/31"))
	assert.Error(t, ValidateDate("2022-01-01"))
	assert.Error(t, ValidateDate("01/01/2022"))
	assert.Error(t, ValidateDate("2022/13/01"))
	assert.Error(t, ValidateDate(""))
}
