package domain

// KeyPrefix namespaces every key vendex writes to the cache store.
const KeyPrefix = "vendex:"
