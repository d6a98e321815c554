// Package verifier audits a directory of batch files for duplicate and
// missing episode numbers.
//
// Verify decodes every *.json file in the directory, drops files that cannot
// be decoded, and summarises the remaining entries: the total count, which
// episode numbers appear more than once, which numbers are absent from the
// covered range, and sample entries from both ends of the sorted list.
package verifier
