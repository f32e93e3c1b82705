package cpu

// Per-opcode implementations for the 0xCB-prefixed instruction set.
// Grounded on original_source/crates/gb-core/src/cpu/cb_ops.rs: each of
// the four 64-entry groups (rotate/shift, BIT, RES, SET) decodes its
// target register from the low 3 bits and its operation/bit index from
// the upper 5 bits.

//RLC B
//#0x00:
func cb0x00(cpu *CPU) int {
	v := cpu.readR8(0x0)
	c := v&0x80 != 0
	res := v<<1 | v>>7
	cpu.writeR8(0x0, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RLC C
//#0x01:
func cb0x01(cpu *CPU) int {
	v := cpu.readR8(0x1)
	c := v&0x80 != 0
	res := v<<1 | v>>7
	cpu.writeR8(0x1, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RLC D
//#0x02:
func cb0x02(cpu *CPU) int {
	v := cpu.readR8(0x2)
	c := v&0x80 != 0
	res := v<<1 | v>>7
	cpu.writeR8(0x2, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RLC E
//#0x03:
func cb0x03(cpu *CPU) int {
	v := cpu.readR8(0x3)
	c := v&0x80 != 0
	res := v<<1 | v>>7
	cpu.writeR8(0x3, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RLC H
//#0x04:
func cb0x04(cpu *CPU) int {
	v := cpu.readR8(0x4)
	c := v&0x80 != 0
	res := v<<1 | v>>7
	cpu.writeR8(0x4, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RLC L
//#0x05:
func cb0x05(cpu *CPU) int {
	v := cpu.readR8(0x5)
	c := v&0x80 != 0
	res := v<<1 | v>>7
	cpu.writeR8(0x5, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RLC (HL)
//#0x06:
func cb0x06(cpu *CPU) int {
	v := cpu.readR8(0x6)
	c := v&0x80 != 0
	res := v<<1 | v>>7
	cpu.writeR8(0x6, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 16
}

//RLC A
//#0x07:
func cb0x07(cpu *CPU) int {
	v := cpu.readR8(0x7)
	c := v&0x80 != 0
	res := v<<1 | v>>7
	cpu.writeR8(0x7, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RRC B
//#0x08:
func cb0x08(cpu *CPU) int {
	v := cpu.readR8(0x0)
	c := v&0x01 != 0
	res := v>>1 | v<<7
	cpu.writeR8(0x0, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RRC C
//#0x09:
func cb0x09(cpu *CPU) int {
	v := cpu.readR8(0x1)
	c := v&0x01 != 0
	res := v>>1 | v<<7
	cpu.writeR8(0x1, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RRC D
//#0x0A:
func cb0x0A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	c := v&0x01 != 0
	res := v>>1 | v<<7
	cpu.writeR8(0x2, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RRC E
//#0x0B:
func cb0x0B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	c := v&0x01 != 0
	res := v>>1 | v<<7
	cpu.writeR8(0x3, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RRC H
//#0x0C:
func cb0x0C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	c := v&0x01 != 0
	res := v>>1 | v<<7
	cpu.writeR8(0x4, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RRC L
//#0x0D:
func cb0x0D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	c := v&0x01 != 0
	res := v>>1 | v<<7
	cpu.writeR8(0x5, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RRC (HL)
//#0x0E:
func cb0x0E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	c := v&0x01 != 0
	res := v>>1 | v<<7
	cpu.writeR8(0x6, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 16
}

//RRC A
//#0x0F:
func cb0x0F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	c := v&0x01 != 0
	res := v>>1 | v<<7
	cpu.writeR8(0x7, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RL B
//#0x10:
func cb0x10(cpu *CPU) int {
	v := cpu.readR8(0x0)
	carryIn := cpu.carryBit()
	c := v&0x80 != 0
	res := v<<1 | carryIn
	cpu.writeR8(0x0, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RL C
//#0x11:
func cb0x11(cpu *CPU) int {
	v := cpu.readR8(0x1)
	carryIn := cpu.carryBit()
	c := v&0x80 != 0
	res := v<<1 | carryIn
	cpu.writeR8(0x1, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RL D
//#0x12:
func cb0x12(cpu *CPU) int {
	v := cpu.readR8(0x2)
	carryIn := cpu.carryBit()
	c := v&0x80 != 0
	res := v<<1 | carryIn
	cpu.writeR8(0x2, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RL E
//#0x13:
func cb0x13(cpu *CPU) int {
	v := cpu.readR8(0x3)
	carryIn := cpu.carryBit()
	c := v&0x80 != 0
	res := v<<1 | carryIn
	cpu.writeR8(0x3, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RL H
//#0x14:
func cb0x14(cpu *CPU) int {
	v := cpu.readR8(0x4)
	carryIn := cpu.carryBit()
	c := v&0x80 != 0
	res := v<<1 | carryIn
	cpu.writeR8(0x4, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RL L
//#0x15:
func cb0x15(cpu *CPU) int {
	v := cpu.readR8(0x5)
	carryIn := cpu.carryBit()
	c := v&0x80 != 0
	res := v<<1 | carryIn
	cpu.writeR8(0x5, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RL (HL)
//#0x16:
func cb0x16(cpu *CPU) int {
	v := cpu.readR8(0x6)
	carryIn := cpu.carryBit()
	c := v&0x80 != 0
	res := v<<1 | carryIn
	cpu.writeR8(0x6, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 16
}

//RL A
//#0x17:
func cb0x17(cpu *CPU) int {
	v := cpu.readR8(0x7)
	carryIn := cpu.carryBit()
	c := v&0x80 != 0
	res := v<<1 | carryIn
	cpu.writeR8(0x7, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RR B
//#0x18:
func cb0x18(cpu *CPU) int {
	v := cpu.readR8(0x0)
	carryIn := uint8(0)
	if cpu.flag(flagC) {
		carryIn = 0x80
	}
	c := v&0x01 != 0
	res := v>>1 | carryIn
	cpu.writeR8(0x0, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RR C
//#0x19:
func cb0x19(cpu *CPU) int {
	v := cpu.readR8(0x1)
	carryIn := uint8(0)
	if cpu.flag(flagC) {
		carryIn = 0x80
	}
	c := v&0x01 != 0
	res := v>>1 | carryIn
	cpu.writeR8(0x1, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RR D
//#0x1A:
func cb0x1A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	carryIn := uint8(0)
	if cpu.flag(flagC) {
		carryIn = 0x80
	}
	c := v&0x01 != 0
	res := v>>1 | carryIn
	cpu.writeR8(0x2, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RR E
//#0x1B:
func cb0x1B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	carryIn := uint8(0)
	if cpu.flag(flagC) {
		carryIn = 0x80
	}
	c := v&0x01 != 0
	res := v>>1 | carryIn
	cpu.writeR8(0x3, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RR H
//#0x1C:
func cb0x1C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	carryIn := uint8(0)
	if cpu.flag(flagC) {
		carryIn = 0x80
	}
	c := v&0x01 != 0
	res := v>>1 | carryIn
	cpu.writeR8(0x4, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RR L
//#0x1D:
func cb0x1D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	carryIn := uint8(0)
	if cpu.flag(flagC) {
		carryIn = 0x80
	}
	c := v&0x01 != 0
	res := v>>1 | carryIn
	cpu.writeR8(0x5, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//RR (HL)
//#0x1E:
func cb0x1E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	carryIn := uint8(0)
	if cpu.flag(flagC) {
		carryIn = 0x80
	}
	c := v&0x01 != 0
	res := v>>1 | carryIn
	cpu.writeR8(0x6, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 16
}

//RR A
//#0x1F:
func cb0x1F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	carryIn := uint8(0)
	if cpu.flag(flagC) {
		carryIn = 0x80
	}
	c := v&0x01 != 0
	res := v>>1 | carryIn
	cpu.writeR8(0x7, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SLA B
//#0x20:
func cb0x20(cpu *CPU) int {
	v := cpu.readR8(0x0)
	c := v&0x80 != 0
	res := v << 1
	cpu.writeR8(0x0, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SLA C
//#0x21:
func cb0x21(cpu *CPU) int {
	v := cpu.readR8(0x1)
	c := v&0x80 != 0
	res := v << 1
	cpu.writeR8(0x1, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SLA D
//#0x22:
func cb0x22(cpu *CPU) int {
	v := cpu.readR8(0x2)
	c := v&0x80 != 0
	res := v << 1
	cpu.writeR8(0x2, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SLA E
//#0x23:
func cb0x23(cpu *CPU) int {
	v := cpu.readR8(0x3)
	c := v&0x80 != 0
	res := v << 1
	cpu.writeR8(0x3, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SLA H
//#0x24:
func cb0x24(cpu *CPU) int {
	v := cpu.readR8(0x4)
	c := v&0x80 != 0
	res := v << 1
	cpu.writeR8(0x4, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SLA L
//#0x25:
func cb0x25(cpu *CPU) int {
	v := cpu.readR8(0x5)
	c := v&0x80 != 0
	res := v << 1
	cpu.writeR8(0x5, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SLA (HL)
//#0x26:
func cb0x26(cpu *CPU) int {
	v := cpu.readR8(0x6)
	c := v&0x80 != 0
	res := v << 1
	cpu.writeR8(0x6, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 16
}

//SLA A
//#0x27:
func cb0x27(cpu *CPU) int {
	v := cpu.readR8(0x7)
	c := v&0x80 != 0
	res := v << 1
	cpu.writeR8(0x7, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRA B
//#0x28:
func cb0x28(cpu *CPU) int {
	v := cpu.readR8(0x0)
	c := v&0x01 != 0
	res := v>>1 | v&0x80
	cpu.writeR8(0x0, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRA C
//#0x29:
func cb0x29(cpu *CPU) int {
	v := cpu.readR8(0x1)
	c := v&0x01 != 0
	res := v>>1 | v&0x80
	cpu.writeR8(0x1, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRA D
//#0x2A:
func cb0x2A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	c := v&0x01 != 0
	res := v>>1 | v&0x80
	cpu.writeR8(0x2, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRA E
//#0x2B:
func cb0x2B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	c := v&0x01 != 0
	res := v>>1 | v&0x80
	cpu.writeR8(0x3, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRA H
//#0x2C:
func cb0x2C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	c := v&0x01 != 0
	res := v>>1 | v&0x80
	cpu.writeR8(0x4, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRA L
//#0x2D:
func cb0x2D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	c := v&0x01 != 0
	res := v>>1 | v&0x80
	cpu.writeR8(0x5, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRA (HL)
//#0x2E:
func cb0x2E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	c := v&0x01 != 0
	res := v>>1 | v&0x80
	cpu.writeR8(0x6, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 16
}

//SRA A
//#0x2F:
func cb0x2F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	c := v&0x01 != 0
	res := v>>1 | v&0x80
	cpu.writeR8(0x7, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SWAP B
//#0x30:
func cb0x30(cpu *CPU) int {
	v := cpu.readR8(0x0)
	res := v<<4 | v>>4
	c := false
	cpu.writeR8(0x0, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SWAP C
//#0x31:
func cb0x31(cpu *CPU) int {
	v := cpu.readR8(0x1)
	res := v<<4 | v>>4
	c := false
	cpu.writeR8(0x1, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SWAP D
//#0x32:
func cb0x32(cpu *CPU) int {
	v := cpu.readR8(0x2)
	res := v<<4 | v>>4
	c := false
	cpu.writeR8(0x2, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SWAP E
//#0x33:
func cb0x33(cpu *CPU) int {
	v := cpu.readR8(0x3)
	res := v<<4 | v>>4
	c := false
	cpu.writeR8(0x3, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SWAP H
//#0x34:
func cb0x34(cpu *CPU) int {
	v := cpu.readR8(0x4)
	res := v<<4 | v>>4
	c := false
	cpu.writeR8(0x4, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SWAP L
//#0x35:
func cb0x35(cpu *CPU) int {
	v := cpu.readR8(0x5)
	res := v<<4 | v>>4
	c := false
	cpu.writeR8(0x5, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SWAP (HL)
//#0x36:
func cb0x36(cpu *CPU) int {
	v := cpu.readR8(0x6)
	res := v<<4 | v>>4
	c := false
	cpu.writeR8(0x6, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 16
}

//SWAP A
//#0x37:
func cb0x37(cpu *CPU) int {
	v := cpu.readR8(0x7)
	res := v<<4 | v>>4
	c := false
	cpu.writeR8(0x7, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRL B
//#0x38:
func cb0x38(cpu *CPU) int {
	v := cpu.readR8(0x0)
	c := v&0x01 != 0
	res := v >> 1
	cpu.writeR8(0x0, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRL C
//#0x39:
func cb0x39(cpu *CPU) int {
	v := cpu.readR8(0x1)
	c := v&0x01 != 0
	res := v >> 1
	cpu.writeR8(0x1, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRL D
//#0x3A:
func cb0x3A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	c := v&0x01 != 0
	res := v >> 1
	cpu.writeR8(0x2, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRL E
//#0x3B:
func cb0x3B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	c := v&0x01 != 0
	res := v >> 1
	cpu.writeR8(0x3, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRL H
//#0x3C:
func cb0x3C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	c := v&0x01 != 0
	res := v >> 1
	cpu.writeR8(0x4, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRL L
//#0x3D:
func cb0x3D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	c := v&0x01 != 0
	res := v >> 1
	cpu.writeR8(0x5, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//SRL (HL)
//#0x3E:
func cb0x3E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	c := v&0x01 != 0
	res := v >> 1
	cpu.writeR8(0x6, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 16
}

//SRL A
//#0x3F:
func cb0x3F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	c := v&0x01 != 0
	res := v >> 1
	cpu.writeR8(0x7, res)
	cpu.setFlag(flagZ, res == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, false)
	cpu.setFlag(flagC, c)
	return 8
}

//BIT 0,B
//#0x40:
func cb0x40(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.setFlag(flagZ, v&(1<<0) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 0,C
//#0x41:
func cb0x41(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.setFlag(flagZ, v&(1<<0) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 0,D
//#0x42:
func cb0x42(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.setFlag(flagZ, v&(1<<0) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 0,E
//#0x43:
func cb0x43(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.setFlag(flagZ, v&(1<<0) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 0,H
//#0x44:
func cb0x44(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.setFlag(flagZ, v&(1<<0) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 0,L
//#0x45:
func cb0x45(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.setFlag(flagZ, v&(1<<0) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 0,(HL)
//#0x46:
func cb0x46(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.setFlag(flagZ, v&(1<<0) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 12
}

//BIT 0,A
//#0x47:
func cb0x47(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.setFlag(flagZ, v&(1<<0) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 1,B
//#0x48:
func cb0x48(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.setFlag(flagZ, v&(1<<1) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 1,C
//#0x49:
func cb0x49(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.setFlag(flagZ, v&(1<<1) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 1,D
//#0x4A:
func cb0x4A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.setFlag(flagZ, v&(1<<1) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 1,E
//#0x4B:
func cb0x4B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.setFlag(flagZ, v&(1<<1) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 1,H
//#0x4C:
func cb0x4C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.setFlag(flagZ, v&(1<<1) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 1,L
//#0x4D:
func cb0x4D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.setFlag(flagZ, v&(1<<1) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 1,(HL)
//#0x4E:
func cb0x4E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.setFlag(flagZ, v&(1<<1) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 12
}

//BIT 1,A
//#0x4F:
func cb0x4F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.setFlag(flagZ, v&(1<<1) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 2,B
//#0x50:
func cb0x50(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.setFlag(flagZ, v&(1<<2) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 2,C
//#0x51:
func cb0x51(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.setFlag(flagZ, v&(1<<2) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 2,D
//#0x52:
func cb0x52(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.setFlag(flagZ, v&(1<<2) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 2,E
//#0x53:
func cb0x53(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.setFlag(flagZ, v&(1<<2) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 2,H
//#0x54:
func cb0x54(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.setFlag(flagZ, v&(1<<2) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 2,L
//#0x55:
func cb0x55(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.setFlag(flagZ, v&(1<<2) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 2,(HL)
//#0x56:
func cb0x56(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.setFlag(flagZ, v&(1<<2) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 12
}

//BIT 2,A
//#0x57:
func cb0x57(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.setFlag(flagZ, v&(1<<2) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 3,B
//#0x58:
func cb0x58(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.setFlag(flagZ, v&(1<<3) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 3,C
//#0x59:
func cb0x59(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.setFlag(flagZ, v&(1<<3) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 3,D
//#0x5A:
func cb0x5A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.setFlag(flagZ, v&(1<<3) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 3,E
//#0x5B:
func cb0x5B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.setFlag(flagZ, v&(1<<3) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 3,H
//#0x5C:
func cb0x5C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.setFlag(flagZ, v&(1<<3) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 3,L
//#0x5D:
func cb0x5D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.setFlag(flagZ, v&(1<<3) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 3,(HL)
//#0x5E:
func cb0x5E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.setFlag(flagZ, v&(1<<3) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 12
}

//BIT 3,A
//#0x5F:
func cb0x5F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.setFlag(flagZ, v&(1<<3) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 4,B
//#0x60:
func cb0x60(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.setFlag(flagZ, v&(1<<4) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 4,C
//#0x61:
func cb0x61(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.setFlag(flagZ, v&(1<<4) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 4,D
//#0x62:
func cb0x62(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.setFlag(flagZ, v&(1<<4) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 4,E
//#0x63:
func cb0x63(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.setFlag(flagZ, v&(1<<4) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 4,H
//#0x64:
func cb0x64(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.setFlag(flagZ, v&(1<<4) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 4,L
//#0x65:
func cb0x65(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.setFlag(flagZ, v&(1<<4) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 4,(HL)
//#0x66:
func cb0x66(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.setFlag(flagZ, v&(1<<4) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 12
}

//BIT 4,A
//#0x67:
func cb0x67(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.setFlag(flagZ, v&(1<<4) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 5,B
//#0x68:
func cb0x68(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.setFlag(flagZ, v&(1<<5) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 5,C
//#0x69:
func cb0x69(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.setFlag(flagZ, v&(1<<5) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 5,D
//#0x6A:
func cb0x6A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.setFlag(flagZ, v&(1<<5) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 5,E
//#0x6B:
func cb0x6B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.setFlag(flagZ, v&(1<<5) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 5,H
//#0x6C:
func cb0x6C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.setFlag(flagZ, v&(1<<5) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 5,L
//#0x6D:
func cb0x6D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.setFlag(flagZ, v&(1<<5) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 5,(HL)
//#0x6E:
func cb0x6E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.setFlag(flagZ, v&(1<<5) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 12
}

//BIT 5,A
//#0x6F:
func cb0x6F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.setFlag(flagZ, v&(1<<5) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 6,B
//#0x70:
func cb0x70(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.setFlag(flagZ, v&(1<<6) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 6,C
//#0x71:
func cb0x71(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.setFlag(flagZ, v&(1<<6) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 6,D
//#0x72:
func cb0x72(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.setFlag(flagZ, v&(1<<6) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 6,E
//#0x73:
func cb0x73(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.setFlag(flagZ, v&(1<<6) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 6,H
//#0x74:
func cb0x74(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.setFlag(flagZ, v&(1<<6) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 6,L
//#0x75:
func cb0x75(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.setFlag(flagZ, v&(1<<6) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 6,(HL)
//#0x76:
func cb0x76(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.setFlag(flagZ, v&(1<<6) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 12
}

//BIT 6,A
//#0x77:
func cb0x77(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.setFlag(flagZ, v&(1<<6) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 7,B
//#0x78:
func cb0x78(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.setFlag(flagZ, v&(1<<7) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 7,C
//#0x79:
func cb0x79(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.setFlag(flagZ, v&(1<<7) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 7,D
//#0x7A:
func cb0x7A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.setFlag(flagZ, v&(1<<7) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 7,E
//#0x7B:
func cb0x7B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.setFlag(flagZ, v&(1<<7) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 7,H
//#0x7C:
func cb0x7C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.setFlag(flagZ, v&(1<<7) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 7,L
//#0x7D:
func cb0x7D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.setFlag(flagZ, v&(1<<7) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//BIT 7,(HL)
//#0x7E:
func cb0x7E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.setFlag(flagZ, v&(1<<7) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 12
}

//BIT 7,A
//#0x7F:
func cb0x7F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.setFlag(flagZ, v&(1<<7) == 0)
	cpu.setFlag(flagN, false)
	cpu.setFlag(flagH, true)
	return 8
}

//RES 0,B
//#0x80:
func cb0x80(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v&^(1<<0))
	return 8
}

//RES 0,C
//#0x81:
func cb0x81(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v&^(1<<0))
	return 8
}

//RES 0,D
//#0x82:
func cb0x82(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v&^(1<<0))
	return 8
}

//RES 0,E
//#0x83:
func cb0x83(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v&^(1<<0))
	return 8
}

//RES 0,H
//#0x84:
func cb0x84(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v&^(1<<0))
	return 8
}

//RES 0,L
//#0x85:
func cb0x85(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v&^(1<<0))
	return 8
}

//RES 0,(HL)
//#0x86:
func cb0x86(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v&^(1<<0))
	return 16
}

//RES 0,A
//#0x87:
func cb0x87(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v&^(1<<0))
	return 8
}

//RES 1,B
//#0x88:
func cb0x88(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v&^(1<<1))
	return 8
}

//RES 1,C
//#0x89:
func cb0x89(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v&^(1<<1))
	return 8
}

//RES 1,D
//#0x8A:
func cb0x8A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v&^(1<<1))
	return 8
}

//RES 1,E
//#0x8B:
func cb0x8B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v&^(1<<1))
	return 8
}

//RES 1,H
//#0x8C:
func cb0x8C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v&^(1<<1))
	return 8
}

//RES 1,L
//#0x8D:
func cb0x8D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v&^(1<<1))
	return 8
}

//RES 1,(HL)
//#0x8E:
func cb0x8E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v&^(1<<1))
	return 16
}

//RES 1,A
//#0x8F:
func cb0x8F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v&^(1<<1))
	return 8
}

//RES 2,B
//#0x90:
func cb0x90(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v&^(1<<2))
	return 8
}

//RES 2,C
//#0x91:
func cb0x91(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v&^(1<<2))
	return 8
}

//RES 2,D
//#0x92:
func cb0x92(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v&^(1<<2))
	return 8
}

//RES 2,E
//#0x93:
func cb0x93(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v&^(1<<2))
	return 8
}

//RES 2,H
//#0x94:
func cb0x94(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v&^(1<<2))
	return 8
}

//RES 2,L
//#0x95:
func cb0x95(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v&^(1<<2))
	return 8
}

//RES 2,(HL)
//#0x96:
func cb0x96(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v&^(1<<2))
	return 16
}

//RES 2,A
//#0x97:
func cb0x97(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v&^(1<<2))
	return 8
}

//RES 3,B
//#0x98:
func cb0x98(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v&^(1<<3))
	return 8
}

//RES 3,C
//#0x99:
func cb0x99(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v&^(1<<3))
	return 8
}

//RES 3,D
//#0x9A:
func cb0x9A(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v&^(1<<3))
	return 8
}

//RES 3,E
//#0x9B:
func cb0x9B(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v&^(1<<3))
	return 8
}

//RES 3,H
//#0x9C:
func cb0x9C(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v&^(1<<3))
	return 8
}

//RES 3,L
//#0x9D:
func cb0x9D(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v&^(1<<3))
	return 8
}

//RES 3,(HL)
//#0x9E:
func cb0x9E(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v&^(1<<3))
	return 16
}

//RES 3,A
//#0x9F:
func cb0x9F(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v&^(1<<3))
	return 8
}

//RES 4,B
//#0xA0:
func cb0xA0(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v&^(1<<4))
	return 8
}

//RES 4,C
//#0xA1:
func cb0xA1(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v&^(1<<4))
	return 8
}

//RES 4,D
//#0xA2:
func cb0xA2(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v&^(1<<4))
	return 8
}

//RES 4,E
//#0xA3:
func cb0xA3(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v&^(1<<4))
	return 8
}

//RES 4,H
//#0xA4:
func cb0xA4(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v&^(1<<4))
	return 8
}

//RES 4,L
//#0xA5:
func cb0xA5(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v&^(1<<4))
	return 8
}

//RES 4,(HL)
//#0xA6:
func cb0xA6(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v&^(1<<4))
	return 16
}

//RES 4,A
//#0xA7:
func cb0xA7(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v&^(1<<4))
	return 8
}

//RES 5,B
//#0xA8:
func cb0xA8(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v&^(1<<5))
	return 8
}

//RES 5,C
//#0xA9:
func cb0xA9(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v&^(1<<5))
	return 8
}

//RES 5,D
//#0xAA:
func cb0xAA(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v&^(1<<5))
	return 8
}

//RES 5,E
//#0xAB:
func cb0xAB(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v&^(1<<5))
	return 8
}

//RES 5,H
//#0xAC:
func cb0xAC(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v&^(1<<5))
	return 8
}

//RES 5,L
//#0xAD:
func cb0xAD(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v&^(1<<5))
	return 8
}

//RES 5,(HL)
//#0xAE:
func cb0xAE(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v&^(1<<5))
	return 16
}

//RES 5,A
//#0xAF:
func cb0xAF(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v&^(1<<5))
	return 8
}

//RES 6,B
//#0xB0:
func cb0xB0(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v&^(1<<6))
	return 8
}

//RES 6,C
//#0xB1:
func cb0xB1(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v&^(1<<6))
	return 8
}

//RES 6,D
//#0xB2:
func cb0xB2(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v&^(1<<6))
	return 8
}

//RES 6,E
//#0xB3:
func cb0xB3(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v&^(1<<6))
	return 8
}

//RES 6,H
//#0xB4:
func cb0xB4(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v&^(1<<6))
	return 8
}

//RES 6,L
//#0xB5:
func cb0xB5(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v&^(1<<6))
	return 8
}

//RES 6,(HL)
//#0xB6:
func cb0xB6(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v&^(1<<6))
	return 16
}

//RES 6,A
//#0xB7:
func cb0xB7(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v&^(1<<6))
	return 8
}

//RES 7,B
//#0xB8:
func cb0xB8(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v&^(1<<7))
	return 8
}

//RES 7,C
//#0xB9:
func cb0xB9(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v&^(1<<7))
	return 8
}

//RES 7,D
//#0xBA:
func cb0xBA(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v&^(1<<7))
	return 8
}

//RES 7,E
//#0xBB:
func cb0xBB(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v&^(1<<7))
	return 8
}

//RES 7,H
//#0xBC:
func cb0xBC(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v&^(1<<7))
	return 8
}

//RES 7,L
//#0xBD:
func cb0xBD(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v&^(1<<7))
	return 8
}

//RES 7,(HL)
//#0xBE:
func cb0xBE(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v&^(1<<7))
	return 16
}

//RES 7,A
//#0xBF:
func cb0xBF(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v&^(1<<7))
	return 8
}

//SET 0,B
//#0xC0:
func cb0xC0(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v|(1<<0))
	return 8
}

//SET 0,C
//#0xC1:
func cb0xC1(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v|(1<<0))
	return 8
}

//SET 0,D
//#0xC2:
func cb0xC2(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v|(1<<0))
	return 8
}

//SET 0,E
//#0xC3:
func cb0xC3(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v|(1<<0))
	return 8
}

//SET 0,H
//#0xC4:
func cb0xC4(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v|(1<<0))
	return 8
}

//SET 0,L
//#0xC5:
func cb0xC5(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v|(1<<0))
	return 8
}

//SET 0,(HL)
//#0xC6:
func cb0xC6(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v|(1<<0))
	return 16
}

//SET 0,A
//#0xC7:
func cb0xC7(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v|(1<<0))
	return 8
}

//SET 1,B
//#0xC8:
func cb0xC8(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v|(1<<1))
	return 8
}

//SET 1,C
//#0xC9:
func cb0xC9(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v|(1<<1))
	return 8
}

//SET 1,D
//#0xCA:
func cb0xCA(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v|(1<<1))
	return 8
}

//SET 1,E
//#0xCB:
func cb0xCB(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v|(1<<1))
	return 8
}

//SET 1,H
//#0xCC:
func cb0xCC(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v|(1<<1))
	return 8
}

//SET 1,L
//#0xCD:
func cb0xCD(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v|(1<<1))
	return 8
}

//SET 1,(HL)
//#0xCE:
func cb0xCE(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v|(1<<1))
	return 16
}

//SET 1,A
//#0xCF:
func cb0xCF(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v|(1<<1))
	return 8
}

//SET 2,B
//#0xD0:
func cb0xD0(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v|(1<<2))
	return 8
}

//SET 2,C
//#0xD1:
func cb0xD1(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v|(1<<2))
	return 8
}

//SET 2,D
//#0xD2:
func cb0xD2(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v|(1<<2))
	return 8
}

//SET 2,E
//#0xD3:
func cb0xD3(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v|(1<<2))
	return 8
}

//SET 2,H
//#0xD4:
func cb0xD4(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v|(1<<2))
	return 8
}

//SET 2,L
//#0xD5:
func cb0xD5(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v|(1<<2))
	return 8
}

//SET 2,(HL)
//#0xD6:
func cb0xD6(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v|(1<<2))
	return 16
}

//SET 2,A
//#0xD7:
func cb0xD7(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v|(1<<2))
	return 8
}

//SET 3,B
//#0xD8:
func cb0xD8(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v|(1<<3))
	return 8
}

//SET 3,C
//#0xD9:
func cb0xD9(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v|(1<<3))
	return 8
}

//SET 3,D
//#0xDA:
func cb0xDA(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v|(1<<3))
	return 8
}

//SET 3,E
//#0xDB:
func cb0xDB(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v|(1<<3))
	return 8
}

//SET 3,H
//#0xDC:
func cb0xDC(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v|(1<<3))
	return 8
}

//SET 3,L
//#0xDD:
func cb0xDD(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v|(1<<3))
	return 8
}

//SET 3,(HL)
//#0xDE:
func cb0xDE(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v|(1<<3))
	return 16
}

//SET 3,A
//#0xDF:
func cb0xDF(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v|(1<<3))
	return 8
}

//SET 4,B
//#0xE0:
func cb0xE0(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v|(1<<4))
	return 8
}

//SET 4,C
//#0xE1:
func cb0xE1(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v|(1<<4))
	return 8
}

//SET 4,D
//#0xE2:
func cb0xE2(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v|(1<<4))
	return 8
}

//SET 4,E
//#0xE3:
func cb0xE3(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v|(1<<4))
	return 8
}

//SET 4,H
//#0xE4:
func cb0xE4(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v|(1<<4))
	return 8
}

//SET 4,L
//#0xE5:
func cb0xE5(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v|(1<<4))
	return 8
}

//SET 4,(HL)
//#0xE6:
func cb0xE6(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v|(1<<4))
	return 16
}

//SET 4,A
//#0xE7:
func cb0xE7(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v|(1<<4))
	return 8
}

//SET 5,B
//#0xE8:
func cb0xE8(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v|(1<<5))
	return 8
}

//SET 5,C
//#0xE9:
func cb0xE9(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v|(1<<5))
	return 8
}

//SET 5,D
//#0xEA:
func cb0xEA(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v|(1<<5))
	return 8
}

//SET 5,E
//#0xEB:
func cb0xEB(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v|(1<<5))
	return 8
}

//SET 5,H
//#0xEC:
func cb0xEC(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v|(1<<5))
	return 8
}

//SET 5,L
//#0xED:
func cb0xED(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v|(1<<5))
	return 8
}

//SET 5,(HL)
//#0xEE:
func cb0xEE(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v|(1<<5))
	return 16
}

//SET 5,A
//#0xEF:
func cb0xEF(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v|(1<<5))
	return 8
}

//SET 6,B
//#0xF0:
func cb0xF0(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v|(1<<6))
	return 8
}

//SET 6,C
//#0xF1:
func cb0xF1(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v|(1<<6))
	return 8
}

//SET 6,D
//#0xF2:
func cb0xF2(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v|(1<<6))
	return 8
}

//SET 6,E
//#0xF3:
func cb0xF3(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v|(1<<6))
	return 8
}

//SET 6,H
//#0xF4:
func cb0xF4(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v|(1<<6))
	return 8
}

//SET 6,L
//#0xF5:
func cb0xF5(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v|(1<<6))
	return 8
}

//SET 6,(HL)
//#0xF6:
func cb0xF6(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v|(1<<6))
	return 16
}

//SET 6,A
//#0xF7:
func cb0xF7(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v|(1<<6))
	return 8
}

//SET 7,B
//#0xF8:
func cb0xF8(cpu *CPU) int {
	v := cpu.readR8(0x0)
	cpu.writeR8(0x0, v|(1<<7))
	return 8
}

//SET 7,C
//#0xF9:
func cb0xF9(cpu *CPU) int {
	v := cpu.readR8(0x1)
	cpu.writeR8(0x1, v|(1<<7))
	return 8
}

//SET 7,D
//#0xFA:
func cb0xFA(cpu *CPU) int {
	v := cpu.readR8(0x2)
	cpu.writeR8(0x2, v|(1<<7))
	return 8
}

//SET 7,E
//#0xFB:
func cb0xFB(cpu *CPU) int {
	v := cpu.readR8(0x3)
	cpu.writeR8(0x3, v|(1<<7))
	return 8
}

//SET 7,H
//#0xFC:
func cb0xFC(cpu *CPU) int {
	v := cpu.readR8(0x4)
	cpu.writeR8(0x4, v|(1<<7))
	return 8
}

//SET 7,L
//#0xFD:
func cb0xFD(cpu *CPU) int {
	v := cpu.readR8(0x5)
	cpu.writeR8(0x5, v|(1<<7))
	return 8
}

//SET 7,(HL)
//#0xFE:
func cb0xFE(cpu *CPU) int {
	v := cpu.readR8(0x6)
	cpu.writeR8(0x6, v|(1<<7))
	return 16
}

//SET 7,A
//#0xFF:
func cb0xFF(cpu *CPU) int {
	v := cpu.readR8(0x7)
	cpu.writeR8(0x7, v|(1<<7))
	return 8
}

