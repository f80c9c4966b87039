// Package openaddr implements an open-addressed hash table from integer
// indices to values with a default for absent keys.
//
// Architecture:
//   - Parallel arrays: index[slot] holds the key (-1 marks an inactive slot),
//     data[slot] holds the value
//   - Power-of-two capacity, Fibonacci hashing, linear probing
//   - Load factor kept at or below 3/4 by doubling and rehashing
//
// Keys are never removed. Setting a key to the default value keeps its slot
// active. A Table is not safe for concurrent mutation.
package openaddr
