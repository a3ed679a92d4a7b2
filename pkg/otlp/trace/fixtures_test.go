package trace

// validRequestBytes is a delimited request holding a single span.
var validRequestBytes = []byte{
	0xcd, 0x02, 0x0a, 0xca, 0x02, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0x9d, 0x02, 0x0a, 0x24, 0x0a, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33,
	0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x20, 0x0a, 0x12, 0xde, 0x01, 0x0a, 0x08, 0x74, 0x72, 0x61, 0x63, 0x65, 0x5f, 0x69, 0x64, 0x12,
	0x07, 0x73, 0x70, 0x61, 0x6e, 0x5f, 0x69, 0x64, 0x1a, 0x0a, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x73,
	0x74, 0x61, 0x74, 0x65, 0x22, 0x0e, 0x70, 0x61, 0x72, 0x65, 0x6e, 0x74, 0x5f, 0x73, 0x70, 0x61,
	0x6e, 0x5f, 0x69, 0x64, 0x2a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x39,
	0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x41, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55,
	0x17, 0x4a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73,
	0x74, 0x50, 0x0a, 0x5a, 0x26, 0x09, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x12, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73,
	0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x20, 0x0a, 0x60, 0x0a, 0x6a, 0x40, 0x0a,
	0x0d, 0x6c, 0x69, 0x6e, 0x6b, 0x5f, 0x74, 0x72, 0x61, 0x63, 0x65, 0x5f, 0x69, 0x64, 0x12, 0x0c,
	0x6c, 0x69, 0x6e, 0x6b, 0x5f, 0x73, 0x70, 0x61, 0x6e, 0x5f, 0x69, 0x64, 0x1a, 0x0f, 0x6c, 0x69,
	0x6e, 0x6b, 0x5f, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x73, 0x74, 0x61, 0x74, 0x65, 0x22, 0x0e, 0x0a,
	0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x28, 0x0a, 0x70,
	0x0a, 0x7a, 0x10, 0x12, 0x0c, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67,
	0x65, 0x18, 0x01, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d,
	0x65, 0x5f, 0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73,
	0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d,
}
