package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"boardwalk/game/engine"
)

func createValidConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:        "Test Config",
		Description: "Test configuration",
		Salary:      200,
		Bail:        50,
		StartCash:   1500,
		MaxPlayers:  6,
		LogLimit:    40,
	}
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	filename := name
	if filepath.Ext(filename) == "" {
		filename = name + ".json"
	}

	path := filepath.Join(dir, filename)
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()

		// Create default config
		defaultConfig := createValidConfig()
		defaultConfig.Name = "Default"
		writeConfigFile(t, dir, "default", defaultConfig)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager == nil {
			t.Error("Expected manager to be non-nil")
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		_, err := NewManager("/non/existent/path")
		if err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("missing default config", func(t *testing.T) {
		dir := t.TempDir()

		manager, err := NewManager(dir)
		if err != nil {
			t.Errorf("NewManager should succeed even without config files, got error: %v", err)
		}

		// Should fall back to the built-in ruleset
		if manager == nil {
			t.Fatal("Expected manager to be created")
		}

		defaultConfig := manager.GetDefault()
		if defaultConfig == nil {
			t.Fatal("Expected default config to be available")
		}
		if defaultConfig.StartCash != engine.DefaultConfig().StartCash {
			t.Errorf("Expected built-in start cash, got %d", defaultConfig.StartCash)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()

	// Create test configs
	defaultConfig := createValidConfig()
	defaultConfig.Name = "Default"
	writeConfigFile(t, dir, "default", defaultConfig)

	highRoller := createValidConfig()
	highRoller.Name = "High Roller"
	highRoller.StartCash = 5000
	writeConfigFile(t, dir, "highroller", highRoller)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load existing config", func(t *testing.T) {
		config, err := manager.LoadConfig("highroller")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != "High Roller" {
			t.Errorf("Expected config name 'High Roller', got '%s'", config.Name)
		}
		if config.StartCash != 5000 {
			t.Errorf("Expected start cash 5000, got %d", config.StartCash)
		}
	})

	t.Run("load with .json extension", func(t *testing.T) {
		config, err := manager.LoadConfig("highroller.json")
		if err != nil {
			t.Fatalf("Failed to load config with extension: %v", err)
		}
		if config.Name != "High Roller" {
			t.Errorf("Expected config name 'High Roller', got '%s'", config.Name)
		}
	})

	t.Run("load from cache", func(t *testing.T) {
		// First load
		config1, _ := manager.LoadConfig("highroller")

		// Second load should come from cache
		config2, err := manager.LoadConfig("highroller")
		if err != nil {
			t.Fatalf("Failed to load config from cache: %v", err)
		}

		// Should be the same pointer (cached)
		if config1 != config2 {
			t.Error("Expected config to be loaded from cache")
		}
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := manager.LoadConfig("non-existent")
		if err != ErrConfigNotFound {
			t.Errorf("Expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("load invalid config", func(t *testing.T) {
		// Write invalid config
		invalidData := []byte(`{"name": ""}`) // Missing required fields
		err := os.WriteFile(filepath.Join(dir, "invalid.json"), invalidData, 0644)
		if err != nil {
			t.Fatalf("Failed to write invalid config: %v", err)
		}

		_, err = manager.LoadConfig("invalid")
		if err == nil {
			t.Error("Expected error for invalid config")
		}
	})

	t.Run("load malformed JSON", func(t *testing.T) {
		// Write malformed JSON
		malformedData := []byte(`{"name": "Malformed", invalid json}`)
		err := os.WriteFile(filepath.Join(dir, "malformed.json"), malformedData, 0644)
		if err != nil {
			t.Fatalf("Failed to write malformed config: %v", err)
		}

		_, err = manager.LoadConfig("malformed")
		if err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

func TestManager_GetDefault(t *testing.T) {
	dir := t.TempDir()

	defaultConfig := createValidConfig()
	defaultConfig.Name = "Classic Rules"
	writeConfigFile(t, dir, "classic", defaultConfig)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	config := manager.GetDefault()
	if config == nil {
		t.Fatal("Expected default config to be non-nil")
	}
	if config.Name != "Classic Rules" {
		t.Errorf("Expected default config name 'Classic Rules', got '%s'", config.Name)
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()

	// Create multiple configs
	configs := []struct {
		filename string
		name     string
	}{
		{"classic", "Classic"},
		{"highroller", "High Roller"},
		{"shortgame", "Short Game"},
		{"hardcore", "Hardcore"},
	}

	for _, cfg := range configs {
		config := createValidConfig()
		config.Name = cfg.name
		writeConfigFile(t, dir, cfg.filename, config)
	}

	// Also add a non-JSON file that should be ignored
	os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("readme"), 0644)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configList, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configList) != 4 {
		t.Errorf("Expected 4 configs, got %d", len(configList))
	}

	// Verify all configs are listed
	foundConfigs := make(map[string]bool)
	for _, info := range configList {
		foundConfigs[info.Name] = true
	}

	for _, cfg := range configs {
		if !foundConfigs[cfg.name] {
			t.Errorf("Config '%s' not found in list", cfg.name)
		}
	}
}

func TestManager_ReloadConfig(t *testing.T) {
	dir := t.TempDir()

	// Create initial config
	config := createValidConfig()
	config.Name = "Changeable"
	config.Salary = 200
	writeConfigFile(t, dir, "classic", config)
	writeConfigFile(t, dir, "changeable", config)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	// Load config first time
	loaded, _ := manager.LoadConfig("changeable")
	if loaded.Salary != 200 {
		t.Errorf("Expected initial salary 200, got %d", loaded.Salary)
	}

	// Modify config file
	config.Salary = 400
	writeConfigFile(t, dir, "changeable", config)

	// Reload config
	err = manager.ReloadConfig("changeable")
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}

	// Verify updated value
	reloaded, _ := manager.LoadConfig("changeable")
	if reloaded.Salary != 400 {
		t.Errorf("Expected reloaded salary 400, got %d", reloaded.Salary)
	}
}

func TestManager_ValidateConfig(t *testing.T) {
	dir := t.TempDir()

	defaultConfig := createValidConfig()
	writeConfigFile(t, dir, "classic", defaultConfig)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("valid config", func(t *testing.T) {
		config := createValidConfig()
		err := manager.ValidateConfig(config)
		if err != nil {
			t.Errorf("Expected valid config to pass validation: %v", err)
		}
	})

	t.Run("invalid config - missing name", func(t *testing.T) {
		config := createValidConfig()
		config.Name = ""
		err := manager.ValidateConfig(config)
		if err == nil {
			t.Error("Expected error for config missing name")
		}
	})

	t.Run("invalid config - negative bail", func(t *testing.T) {
		config := createValidConfig()
		config.Bail = -10
		err := manager.ValidateConfig(config)
		if err == nil {
			t.Error("Expected error for negative bail")
		}
	})

	t.Run("invalid config - zero start cash", func(t *testing.T) {
		config := createValidConfig()
		config.StartCash = 0
		err := manager.ValidateConfig(config)
		if err == nil {
			t.Error("Expected error for zero start cash")
		}
	})

	t.Run("invalid config - max players below minimum", func(t *testing.T) {
		config := createValidConfig()
		config.MaxPlayers = 1
		err := manager.ValidateConfig(config)
		if err == nil {
			t.Error("Expected error for max players below minimum")
		}
	})
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()

	// Create configs
	defaultConfig := createValidConfig()
	writeConfigFile(t, dir, "classic", defaultConfig)

	for i := 1; i <= 5; i++ {
		config := createValidConfig()
		config.Name = "Config" + string(rune('0'+i))
		writeConfigFile(t, dir, "config"+string(rune('0'+i)), config)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	// Test concurrent loading
	var wg sync.WaitGroup
	errors := make(chan error, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			configName := "config" + string(rune('0'+((id%5)+1)))
			_, err := manager.LoadConfig(configName)
			if err != nil {
				errors <- err
			}
		}(i)
	}

	wg.Wait()
	close(errors)

	// Check for errors
	for err := range errors {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}

	// Verify cache size
	if manager.Count() < 5 {
		t.Errorf("Expected at least 5 configs in cache, got %d", manager.Count())
	}
}

func TestManager_CachingBehavior(t *testing.T) {
	dir := t.TempDir()

	defaultConfig := createValidConfig()
	writeConfigFile(t, dir, "classic", defaultConfig)

	testConfig := createValidConfig()
	testConfig.Name = "Test"
	writeConfigFile(t, dir, "test", testConfig)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	// Load config multiple times
	for i := 0; i < 10; i++ {
		config, err := manager.LoadConfig("test")
		if err != nil {
			t.Fatalf("Failed to load config on iteration %d: %v", i, err)
		}
		if config.Name != "Test" {
			t.Errorf("Unexpected config name on iteration %d", i)
		}
	}

	// Should have two entries in cache: the default config and the test config
	if manager.Count() != 2 {
		t.Errorf("Expected 2 configs in cache, got %d", manager.Count())
	}
}

// Add missing test-only methods to Manager

func (m *Manager) ReloadConfig(name string) error {
	m.mu.Lock()
	// Remove from cache to force reload
	delete(m.configs, name)
	m.mu.Unlock()

	// Load fresh from disk (without holding the lock)
	_, err := m.LoadConfig(name)
	return err
}

func (m *Manager) ValidateConfig(config *engine.GameConfig) error {
	return engine.ValidateConfig(config)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.configs)
}
