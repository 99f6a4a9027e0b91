package scaffold

import "strings"

// Stub holds the placeholder files generated for one project language.
// File paths may contain a {project} placeholder replaced by the project
// name at scaffold time.
type Stub struct {
	Language string
	Files    map[string]string
}

var stubs = map[string]Stub{
	"go": {
		Language: "go",
		Files: map[string]string{
			"src/main.go": `// Main package for the Go project
package main

import (
	"encoding/json"
	"fmt"
	"log"
)

// Result represents the output of the run function
type Result struct {
	Status  string ` + "`json:\"status\"`" + `
	Message string ` + "`json:\"message\"`" + `
}

// Run executes the main functionality of the project
func Run() Result {
	return Result{
		Status:  "success",
		Message: "Hello from Go project!",
	}
}

func main() {
	result := Run()

	jsonData, err := json.Marshal(result)
	if err != nil {
		log.Fatalf("marshalling result: %v", err)
	}

	fmt.Printf("Result: %s\n", string(jsonData))
}
`,
		},
	},
	"python": {
		Language: "python",
		Files: map[string]string{
			"src/{project}/__init__.py": "",
			"src/{project}/main.py": `"""
Main entry point for the Python project.
"""
from typing import Any, Dict


def run() -> Dict[str, Any]:
    """Run the main functionality of the project."""
    return {
        "status": "success",
        "message": "Hello from Python project!",
    }


if __name__ == "__main__":
    result = run()
    print(f"Result: {result}")
`,
		},
	},
	"rust": {
		Language: "rust",
		Files: map[string]string{
			"Cargo.toml": `[package]
name = "{project}"
version = "0.1.0"
edition = "2021"

[dependencies]
serde = { version = "1", features = ["derive"] }
serde_json = "1"
`,
			"src/main.rs": `//! Main entry point for the Rust project.

use serde::{Deserialize, Serialize};

/// Result of the run function
#[derive(Debug, Serialize, Deserialize)]
pub struct RunResult {
    status: String,
    message: String,
}

/// Run the main functionality of the project
pub fn run() -> RunResult {
    RunResult {
        status: String::from("success"),
        message: String::from("Hello from Rust project!"),
    }
}

fn main() {
    let result = run();
    println!("Result: {:?}", result);
}
`,
		},
	},
}

// SupportedLanguages returns the languages Init can generate stubs for
func SupportedLanguages() []string {
	return []string{"go", "python", "rust"}
}

// markdownTitle derives a heading from a file name: underscores become
// spaces and each word is capitalized
func markdownTitle(name string) string {
	name = strings.TrimSuffix(name, ".md")
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func markdownPlaceholder(name string) string {
	return "# " + markdownTitle(name) + "\n\nContent will go here.\n"
}
