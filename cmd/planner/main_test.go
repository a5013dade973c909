package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"planner/internal/planner"
	"planner/internal/server"
	inmemory "planner/repository/inmemory"
	jsonfile "planner/repository/jsonfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPlannerAPI struct {
	mock.Mock
}

func (m *MockPlannerAPI) Start() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockPlannerAPI) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestGracefulShutdownSignalHandling(t *testing.T) {
	tests := []struct {
		name   string
		signal os.Signal
		want   struct {
			handled bool
		}
	}{
		{
			name:   "SIGINT signal",
			signal: syscall.SIGINT,
			want: struct {
				handled bool
			}{
				handled: true,
			},
		},
		{
			name:   "SIGTERM signal",
			signal: syscall.SIGTERM,
			want: struct {
				handled bool
			}{
				handled: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, tt.signal)
			defer signal.Stop(sigChan)

			go func() {
				time.Sleep(10 * time.Millisecond)
				sigChan <- tt.signal
			}()

			select {
			case sig := <-sigChan:
				assert.Equal(t, tt.signal, sig)
				assert.True(t, tt.want.handled)
			case <-time.After(100 * time.Millisecond):
				t.Fatal("Signal not received within timeout")
			}
		})
	}
}

func TestServerShutdown(t *testing.T) {
	tests := []struct {
		name string
		want struct {
			success bool
		}
		mockSetup func(*MockPlannerAPI)
	}{
		{
			name: "successful server shutdown",
			want: struct {
				success bool
			}{
				success: true,
			},
			mockSetup: func(mockAPI *MockPlannerAPI) {
				mockAPI.On("Shutdown", mock.Anything).Return(nil)
			},
		},
		{
			name: "server shutdown error",
			want: struct {
				success bool
			}{
				success: false,
			},
			mockSetup: func(mockAPI *MockPlannerAPI) {
				mockAPI.On("Shutdown", mock.Anything).Return(assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := &MockPlannerAPI{}
			tt.mockSetup(mockAPI)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			err := mockAPI.Shutdown(ctx)
			if tt.want.success {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}

			mockAPI.AssertExpectations(t)
		})
	}
}

func TestConfigurationReading(t *testing.T) {
	cfg := server.ReadConfig()
	assert.NotNil(t, cfg, "Configuration should not be nil")
	assert.NotEmpty(t, cfg.Addr)
	assert.NotZero(t, cfg.Port)
}

func TestStorageFallback(t *testing.T) {
	tests := []struct {
		name    string
		dataDir string
		want    struct {
			fileStorage bool
		}
	}{
		{
			name:    "valid data directory uses file storage",
			dataDir: t.TempDir(),
			want: struct {
				fileStorage bool
			}{
				fileStorage: true,
			},
		},
		{
			name:    "empty data directory falls back to memory",
			dataDir: "",
			want: struct {
				fileStorage bool
			}{
				fileStorage: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var store planner.Store

			fileStorage, err := jsonfile.NewStorage(tt.dataDir)
			if err != nil {
				store = inmemory.NewStorage()
			} else {
				store = fileStorage
			}

			assert.NotNil(t, store)
			if tt.want.fileStorage {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestAPIInitialization(t *testing.T) {
	managers := planner.New(inmemory.NewStorage(), t.TempDir())
	assert.NotNil(t, managers, "Managers should be created")

	api := server.NewPlannerAPI(managers, managers, managers, managers, server.ReadConfig())
	assert.NotNil(t, api, "API should be created")
}
