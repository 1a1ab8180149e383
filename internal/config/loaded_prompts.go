package config

import (
	"sync"
)

var (
	loadedPrompts     AllLoadedPrompts
	loadedPromptsOnce sync.Once
)

// LoadedPrompts holds the content of prompts loaded from files
type LoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// LoadedSystemPrompts contains loaded system-level instructions
type LoadedSystemPrompts struct {
	MatchKeywords         string
	ExtractQualifications string
}

// LoadedUserPrompts contains loaded user-level prompt templates
type LoadedUserPrompts struct {
	MatchKeywords         string
	ExtractQualifications string
}

// OperationLoadedPrompts holds loaded prompts for a specific operation
type OperationLoadedPrompts struct {
	SystemPrompts LoadedSystemPrompts
	UserPrompts   LoadedUserPrompts
}

// AllLoadedPrompts holds all loaded prompts for all operations
type AllLoadedPrompts struct {
	Global         LoadedPrompts
	Match          OperationLoadedPrompts
	Qualifications OperationLoadedPrompts
}

// GetPromptsForOperation returns a copy of the loaded prompts for an operation type
func GetPromptsForOperation(operationType string) OperationLoadedPrompts {
	switch operationType {
	case "match":
		return loadedPrompts.Match
	case "qualifications":
		return loadedPrompts.Qualifications
	default:
		return OperationLoadedPrompts{
			SystemPrompts: loadedPrompts.Global.SystemPrompts,
			UserPrompts:   loadedPrompts.Global.UserPrompts,
		}
	}
}
