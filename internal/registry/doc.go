// Package registry reads the hierarchical system configuration store: named
// keys holding subkeys and string values.
//
// Windows hosts read the native registry through [NewSystemStore]. Other
// hosts load a JSON export into a [MemoryStore], which is also what tests use.
// Consumers only see the [Store] and [Key] interfaces and walk paths with
// [Walk] and [FindSubKey].
package registry
