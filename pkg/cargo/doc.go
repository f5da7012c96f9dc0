// Package cargo provides [deps.Provider] implementations for Cargo projects.
//
// # Providers
//
//   - [MetadataCommand] runs `cargo metadata --format-version 1` and decodes
//     its JSON output. This is the default and the only provider that knows
//     every package's declared features.
//   - [MetadataFile] decodes the same JSON from a file or stdin, which is
//     useful for captured graphs and for tests.
//   - [Lockfile] reads Cargo.toml and Cargo.lock directly without invoking
//     cargo. Cargo.lock records no feature declarations, so dependencies
//     loaded this way report no features.
//
// None of the providers write to the project.
//
// [deps.Provider]: github.com/matzehuels/cargodeps/pkg/deps.Provider
package cargo
