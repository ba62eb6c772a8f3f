// Package i2cproto provides the wire encoding between the central controller
// and ESPSynth modules.
package i2cproto

// A message on the bus is one command/register byte followed by a fixed-size
// payload whose layout is defined per command. There is no length prefix,
// checksum or delimiter: message boundaries come from the transport.
//
// All multi-byte fields are little-endian on the wire regardless of the host.
// Fields are written byte by byte, never by copying Go structs.
//
//	Set Parameter   82 | id(u16) | value(4)      7 bytes
//	I2S Config      81 | in(u16) | out(u16)      5 bytes
//	Reset           80                           1 byte
//	Save Settings   83                           1 byte
//	Load Settings   84                           1 byte
//
// The pack/unpack functions are pure and report failures only through a zero
// or false result. A failed call never touches the destination.
