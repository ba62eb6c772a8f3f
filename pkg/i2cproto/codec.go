package i2cproto

// Payload and message sizes.
const (
	SetParamPayloadSize  = 6
	I2SConfigPayloadSize = 4

	CommandMsgSize   = 1
	SetParamMsgSize  = CommandMsgSize + SetParamPayloadSize
	I2SConfigMsgSize = CommandMsgSize + I2SConfigPayloadSize
)

func putU16(b []byte, v uint16) {
	b[0], b[1] = byte(v), byte(v>>8)
}

func getU16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

// PackSetParamMsg writes a complete Set-Parameter message into buf.
// It returns the number of bytes written, or 0 if buf is too small,
// in which case buf is not modified.
func PackSetParamMsg(buf []byte, id ParamID, value ParamValue) int {
	if len(buf) < SetParamMsgSize {
		return 0
	}
	buf[0] = CmdSetParam
	putU16(buf[1:3], uint16(id))
	copy(buf[3:SetParamMsgSize], value[:])
	return SetParamMsgSize
}

// UnpackSetParamPayload decodes a Set-Parameter payload (the command byte
// already stripped). The payload must be exactly SetParamPayloadSize bytes.
// On failure it returns false and leaves id and value untouched.
func UnpackSetParamPayload(payload []byte, id *ParamID, value *ParamValue) bool {
	if id == nil || value == nil || len(payload) != SetParamPayloadSize {
		return false
	}
	*id = ParamID(getU16(payload[0:2]))
	copy(value[:], payload[2:SetParamPayloadSize])
	return true
}

// PackI2SConfigMsg writes a complete I2S-Configuration message into buf.
// It returns the number of bytes written, or 0 without modifying buf if
// config is nil or buf is too small.
func PackI2SConfigMsg(buf []byte, config *I2SConfig) int {
	if config == nil || len(buf) < I2SConfigMsgSize {
		return 0
	}
	buf[0] = CmdI2SConfig
	putU16(buf[1:3], config.InputSlots)
	putU16(buf[3:5], config.OutputSlots)
	return I2SConfigMsgSize
}

// UnpackI2SConfigPayload decodes an I2S-Configuration payload (the command
// byte already stripped). The payload must be exactly I2SConfigPayloadSize
// bytes. On failure it returns false and leaves config untouched.
func UnpackI2SConfigPayload(payload []byte, config *I2SConfig) bool {
	if config == nil || len(payload) != I2SConfigPayloadSize {
		return false
	}
	config.InputSlots = getU16(payload[0:2])
	config.OutputSlots = getU16(payload[2:4])
	return true
}

// PackCommandMsg writes a message without payload (e.g. CmdReset).
// It returns 1, or 0 if buf is empty.
func PackCommandMsg(buf []byte, cmd byte) int {
	if len(buf) < CommandMsgSize {
		return 0
	}
	buf[0] = cmd
	return CommandMsgSize
}
