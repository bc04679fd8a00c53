// Package cobs implements Consistent Overhead Byte Stuffing (COBS) and its
// COBS/Reduced (COBS/R) variant.  Both transform arbitrary binary data into
// data that contains no zero bytes, so that a single 0x00 byte can
// unambiguously delimit frames in a byte stream.  COBS costs one byte of
// overhead, plus one more per 254 bytes of payload; COBS/R additionally
// elides the final byte of overhead whenever the payload's last data byte is
// large enough to stand in for the final length code.
package cobs
