package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// GetLoadedPrompts returns the loaded prompt content in a thread-safe way
func GetLoadedPrompts() *AllLoadedPrompts {
	return &loadedPrompts
}

// loadPromptsFromFiles loads custom prompts from external files if file paths are specified
func (c *Config) loadPromptsFromFiles() error {
	log.Println("[CONFIG] Starting custom prompt loading from files")

	// Initialize loaded prompts exactly once
	loadedPromptsOnce.Do(func() {
		loadedPrompts = AllLoadedPrompts{}
	})

	// Load global prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.CustomPrompts.SystemPrompts, &loadedPrompts.Global.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load global system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.CustomPrompts.UserPrompts, &loadedPrompts.Global.UserPrompts); err != nil {
		return fmt.Errorf("failed to load global user prompts: %w", err)
	}

	// Load operation-specific prompts
	if err := c.loadSystemPromptsFromFiles(&c.AI.Match.CustomPrompts.SystemPrompts, &loadedPrompts.Match.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load match system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Match.CustomPrompts.UserPrompts, &loadedPrompts.Match.UserPrompts); err != nil {
		return fmt.Errorf("failed to load match user prompts: %w", err)
	}

	if err := c.loadSystemPromptsFromFiles(&c.AI.Qualifications.CustomPrompts.SystemPrompts, &loadedPrompts.Qualifications.SystemPrompts); err != nil {
		return fmt.Errorf("failed to load qualifications system prompts: %w", err)
	}
	if err := c.loadUserPromptsFromFiles(&c.AI.Qualifications.CustomPrompts.UserPrompts, &loadedPrompts.Qualifications.UserPrompts); err != nil {
		return fmt.Errorf("failed to load qualifications user prompts: %w", err)
	}

	// Log summary of prompt sources after loading
	c.logPromptLoadingSummary()

	return nil
}

// loadSystemPromptsFromFiles loads system prompts from files if file paths are specified
func (c *Config) loadSystemPromptsFromFiles(prompts *SystemPrompts, target *LoadedSystemPrompts) error {
	if prompts.MatchKeywordsFile != "" {
		content, err := c.loadPromptFromFile(prompts.MatchKeywordsFile, "system", "matchKeywords")
		if err != nil {
			return err
		}
		target.MatchKeywords = content
	}

	if prompts.ExtractQualificationsFile != "" {
		content, err := c.loadPromptFromFile(prompts.ExtractQualificationsFile, "system", "extractQualifications")
		if err != nil {
			return err
		}
		target.ExtractQualifications = content
	}

	return nil
}

// loadUserPromptsFromFiles loads user prompts from files if file paths are specified
func (c *Config) loadUserPromptsFromFiles(prompts *UserPrompts, target *LoadedUserPrompts) error {
	if prompts.MatchKeywordsFile != "" {
		content, err := c.loadPromptFromFile(prompts.MatchKeywordsFile, "user", "matchKeywords")
		if err != nil {
			return err
		}
		target.MatchKeywords = content
	}

	if prompts.ExtractQualificationsFile != "" {
		content, err := c.loadPromptFromFile(prompts.ExtractQualificationsFile, "user", "extractQualifications")
		if err != nil {
			return err
		}
		target.ExtractQualifications = content
	}

	return nil
}

// loadPromptFromFile loads a prompt from a file with proper error handling and logging
func (c *Config) loadPromptFromFile(filePath, promptType, operation string) (string, error) {
	// Resolve relative paths
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s %s prompt file '%s': %w", promptType, operation, filePath, err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s %s prompt file not found: %s", promptType, operation, absPath)
	}

	// Read file content
	content, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s prompt file '%s': %w", promptType, operation, absPath, err)
	}

	// Validate content is not empty
	trimmedContent := strings.TrimSpace(string(content))
	if trimmedContent == "" {
		return "", fmt.Errorf("%s %s prompt file '%s' is empty", promptType, operation, absPath)
	}

	// Log successful loading
	log.Printf("[CONFIG] Successfully loaded %s %s prompt from file: %s (%d characters)",
		promptType, operation, absPath, len(trimmedContent))

	return trimmedContent, nil
}

// validatePromptFiles validates that prompt files exist and are readable before loading
func (c *Config) validatePromptFiles() error {
	var validationErrors []string

	// Helper function to validate a file path
	validateFile := func(filePath, promptType, operation string) {
		if filePath == "" {
			return // No file specified, skip validation
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("invalid path for %s %s prompt: %s", promptType, operation, filePath))
			return
		}

		if _, err := os.Stat(absPath); os.IsNotExist(err) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s %s prompt file not found: %s", promptType, operation, absPath))
		}
	}

	// Validate global prompt files
	validateFile(c.AI.CustomPrompts.SystemPrompts.MatchKeywordsFile, "system", "matchKeywords")
	validateFile(c.AI.CustomPrompts.SystemPrompts.ExtractQualificationsFile, "system", "extractQualifications")
	validateFile(c.AI.CustomPrompts.UserPrompts.MatchKeywordsFile, "user", "matchKeywords")
	validateFile(c.AI.CustomPrompts.UserPrompts.ExtractQualificationsFile, "user", "extractQualifications")

	// Validate operation-specific prompt files
	validateFile(c.AI.Match.CustomPrompts.SystemPrompts.MatchKeywordsFile, "match system", "matchKeywords")
	validateFile(c.AI.Match.CustomPrompts.UserPrompts.MatchKeywordsFile, "match user", "matchKeywords")
	validateFile(c.AI.Qualifications.CustomPrompts.SystemPrompts.ExtractQualificationsFile, "qualifications system", "extractQualifications")
	validateFile(c.AI.Qualifications.CustomPrompts.UserPrompts.ExtractQualificationsFile, "qualifications user", "extractQualifications")

	if len(validationErrors) > 0 {
		return fmt.Errorf("prompt file validation failed:\n%s", strings.Join(validationErrors, "\n"))
	}

	return nil
}

// logPromptLoadingSummary logs a summary of loaded prompts
func (c *Config) logPromptLoadingSummary() {
	log.Println("[CONFIG] === Custom Prompt Loading Summary ===")

	promptCount := 0

	promptChecks := []struct {
		content string
		message string
	}{
		{loadedPrompts.Global.SystemPrompts.MatchKeywords, "[CONFIG] Global system match prompt: loaded from config/file"},
		{loadedPrompts.Global.SystemPrompts.ExtractQualifications, "[CONFIG] Global system qualifications prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.MatchKeywords, "[CONFIG] Global user match prompt: loaded from config/file"},
		{loadedPrompts.Global.UserPrompts.ExtractQualifications, "[CONFIG] Global user qualifications prompt: loaded from config/file"},
		{loadedPrompts.Match.SystemPrompts.MatchKeywords, "[CONFIG] Match-specific system prompt: loaded from config/file"},
		{loadedPrompts.Match.UserPrompts.MatchKeywords, "[CONFIG] Match-specific user prompt: loaded from config/file"},
		{loadedPrompts.Qualifications.SystemPrompts.ExtractQualifications, "[CONFIG] Qualifications-specific system prompt: loaded from config/file"},
		{loadedPrompts.Qualifications.UserPrompts.ExtractQualifications, "[CONFIG] Qualifications-specific user prompt: loaded from config/file"},
	}

	for _, check := range promptChecks {
		if check.content != "" {
			log.Println(check.message)
			promptCount++
		}
	}

	if promptCount == 0 {
		log.Println("[CONFIG] No custom prompts loaded - using built-in defaults")
	} else {
		log.Printf("[CONFIG] Total custom prompts loaded: %d", promptCount)
	}

	log.Println("[CONFIG] ==========================================")
}
