package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetMatchConfig returns the AI configuration for keyword match operations with fallback to global config
func (c *Config) GetMatchConfig() OperationAIConfig {
	config := c.AI.Match

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply match-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.MatchKeywords == "" {
		config.CustomPrompts.SystemPrompts.MatchKeywords = c.AI.CustomPrompts.SystemPrompts.MatchKeywords
	}
	if config.CustomPrompts.UserPrompts.MatchKeywords == "" {
		config.CustomPrompts.UserPrompts.MatchKeywords = c.AI.CustomPrompts.UserPrompts.MatchKeywords
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.MatchKeywordsFile == "" {
		config.CustomPrompts.SystemPrompts.MatchKeywordsFile = c.AI.CustomPrompts.SystemPrompts.MatchKeywordsFile
	}
	if config.CustomPrompts.UserPrompts.MatchKeywordsFile == "" {
		config.CustomPrompts.UserPrompts.MatchKeywordsFile = c.AI.CustomPrompts.UserPrompts.MatchKeywordsFile
	}

	return config
}

// GetQualificationsConfig returns the AI configuration for qualification extraction with fallback to global config
func (c *Config) GetQualificationsConfig() OperationAIConfig {
	config := c.AI.Qualifications

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply qualifications-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.ExtractQualifications == "" {
		config.CustomPrompts.SystemPrompts.ExtractQualifications = c.AI.CustomPrompts.SystemPrompts.ExtractQualifications
	}
	if config.CustomPrompts.UserPrompts.ExtractQualifications == "" {
		config.CustomPrompts.UserPrompts.ExtractQualifications = c.AI.CustomPrompts.UserPrompts.ExtractQualifications
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.ExtractQualificationsFile == "" {
		config.CustomPrompts.SystemPrompts.ExtractQualificationsFile = c.AI.CustomPrompts.SystemPrompts.ExtractQualificationsFile
	}
	if config.CustomPrompts.UserPrompts.ExtractQualificationsFile == "" {
		config.CustomPrompts.UserPrompts.ExtractQualificationsFile = c.AI.CustomPrompts.UserPrompts.ExtractQualificationsFile
	}

	return config
}

// GetLoadedMatchPrompts returns a copy of the loaded prompts for the match operation
func (c *Config) GetLoadedMatchPrompts() OperationLoadedPrompts {
	return loadedPrompts.Match
}

// GetLoadedQualificationsPrompts returns a copy of the loaded prompts for the qualifications operation
func (c *Config) GetLoadedQualificationsPrompts() OperationLoadedPrompts {
	return loadedPrompts.Qualifications
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return loadedPrompts.Global
}
