package main

import (
	"testing"
)

func TestBuildScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"cornell scene", "cornell", false},
		{"cornell-smoke scene", "cornell-smoke", false},

		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := buildScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if sc.Width <= 0 || sc.Height <= 0 {
				t.Errorf("Scene native size should be positive, got %dx%d", sc.Width, sc.Height)
			}
			if sc.World == nil || sc.Lights == nil || sc.Camera == nil {
				t.Error("Scene is missing world, lights or camera")
			}
		})
	}
}
