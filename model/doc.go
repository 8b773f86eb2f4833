// Package model defines the provider-agnostic abstraction for the hosted
// chat models the coach talks to.
//
// Core goals:
//   - Unify streaming + non-streaming generation behind a single interface
//   - Normalize the tool/function declaration shape (ToolDefinition)
//   - Keep request/response shapes minimal and transport independent
//   - Facilitate deterministic mocking for tests (MockModel)
//
// Providers (OpenAI, Anthropic) implement the Model interface from this
// package so the orchestration layer stays decoupled from vendor SDKs.
package model
