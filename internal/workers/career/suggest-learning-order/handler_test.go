// internal/workers/career/suggest-learning-order/handler_test.go
package suggestlearningorder

import (
	"context"
	"testing"
	"time"

	"skillgap-analyzer/internal/common/config"
	"skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/internal/skillgap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHandler(t *testing.T, cfg *Config) *Handler {
	t.Helper()
	catalog, err := skillgap.DefaultCatalog()
	require.NoError(t, err)
	if cfg == nil {
		cfg = LoadConfig()
	}
	return NewHandler(cfg, skillgap.NewStaticProvider(catalog), logger.NewTestLogger(t))
}

func TestHandler_Execute(t *testing.T) {
	tests := []struct {
		name            string
		input           *Input
		wantRole        string
		wantOrder       []string
		wantUnsequenced []string
		wantPrereqs     bool
	}{
		{
			name:            "frontend prerequisites",
			input:           &Input{TargetRole: "Frontend Developer", MissingSkills: []string{"React", "TypeScript", "Redux", "Webpack"}},
			wantRole:        "Frontend Developer",
			wantOrder:       []string{"TypeScript", "React", "Redux", "Webpack"},
			wantUnsequenced: []string{},
			wantPrereqs:     true,
		},
		{
			name:            "role matched case-insensitively",
			input:           &Input{TargetRole: "data scientist", MissingSkills: []string{"TensorFlow", "pandas", "Python"}},
			wantRole:        "Data Scientist",
			wantOrder:       []string{"Python", "Pandas"},
			wantUnsequenced: []string{"TensorFlow"},
			wantPrereqs:     true,
		},
		{
			name:            "role without prerequisites keeps input order",
			input:           &Input{TargetRole: "Mobile Developer", MissingSkills: []string{"Swift", "Kotlin"}},
			wantRole:        "Mobile Developer",
			wantOrder:       []string{"Swift", "Kotlin"},
			wantUnsequenced: []string{},
			wantPrereqs:     false,
		},
		{
			name:            "nothing missing",
			input:           &Input{TargetRole: "Backend Developer", MissingSkills: []string{}},
			wantRole:        "Backend Developer",
			wantOrder:       []string{},
			wantUnsequenced: []string{},
			wantPrereqs:     true,
		},
	}

	handler := createTestHandler(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, output.TargetRole)
			assert.Equal(t, tt.wantOrder, output.LearningOrder)
			assert.Equal(t, tt.wantUnsequenced, output.UnsequencedSkills)
			assert.Equal(t, tt.wantPrereqs, output.HasPrerequisites)
		})
	}
}

func TestHandler_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    *Input
		wantCode errors.ErrorCode
	}{
		{"blank role", &Input{TargetRole: "", MissingSkills: []string{"React"}}, errors.ErrCodeInvalidInput},
		{"missing skills absent", &Input{TargetRole: "Frontend Developer"}, errors.ErrCodeInvalidInput},
		{"blank skill", &Input{TargetRole: "Frontend Developer", MissingSkills: []string{"React", " "}}, errors.ErrCodeInvalidInput},
		{"unknown role", &Input{TargetRole: "Astronaut", MissingSkills: []string{"React"}}, errors.ErrCodeRoleNotFound},
	}

	handler := createTestHandler(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Execute(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.AsStandardError(err).Code)
		})
	}
}

func TestHandler_Execute_UnknownRolePassThrough(t *testing.T) {
	cfg := LoadConfig().Apply(config.WorkerConfig{AllowUnknownRole: true})
	handler := createTestHandler(t, cfg)

	output, err := handler.Execute(context.Background(), &Input{TargetRole: "Astronaut", MissingSkills: []string{"Physics", "Rocketry"}})
	require.NoError(t, err)
	assert.Equal(t, "Astronaut", output.TargetRole)
	assert.Equal(t, []string{"Physics", "Rocketry"}, output.LearningOrder)
	assert.False(t, output.HasPrerequisites)
}

func TestConfig_Apply(t *testing.T) {
	tests := []struct {
		name        string
		worker      config.WorkerConfig
		wantTimeout time.Duration
		wantStrict  bool
	}{
		{name: "defaults", worker: config.WorkerConfig{}, wantTimeout: 10 * time.Second, wantStrict: true},
		{name: "timeout override", worker: config.WorkerConfig{Timeout: 2500}, wantTimeout: 2500 * time.Millisecond, wantStrict: true},
		{name: "pass-through", worker: config.WorkerConfig{AllowUnknownRole: true}, wantTimeout: 10 * time.Second, wantStrict: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadConfig().Apply(tt.worker)
			assert.Equal(t, tt.wantTimeout, cfg.Timeout)
			assert.Equal(t, tt.wantStrict, cfg.RequireKnownRole)
		})
	}
}
