package logs

// validRequestBytes is a delimited request holding a single log record.
var validRequestBytes = []byte{
	0xb8, 0x01, 0x0a, 0xb5, 0x01, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0x88, 0x01, 0x0a, 0x24, 0x0a, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33,
	0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x20, 0x0a, 0x12, 0x4a, 0x09, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x59, 0x83, 0xf9,
	0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x10, 0x09, 0x1a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x74,
	0x65, 0x78, 0x74, 0x2a, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x32, 0x0e, 0x0a, 0x04, 0x74,
	0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x38, 0x0a, 0x45, 0x01, 0x00,
	0x00, 0x00, 0x4a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x52, 0x04, 0x74, 0x65, 0x73, 0x74, 0x1a, 0x14,
	0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c,
	0x2e, 0x63, 0x6f, 0x6d, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f,
	0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d,
}

// invalidSchemaURLRequestBytes is a delimited request whose schema URLs have no host.
var invalidSchemaURLRequestBytes = []byte{
	0x9f, 0x01, 0x0a, 0x9c, 0x01, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0x7c, 0x0a, 0x24, 0x0a, 0x09, 0x74,
	0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33, 0x1a,
	0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x20,
	0x0a, 0x12, 0x4a, 0x09, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x59, 0x83, 0xf9, 0x77,
	0xfe, 0x6f, 0x51, 0x55, 0x17, 0x10, 0x09, 0x1a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x74, 0x65,
	0x78, 0x74, 0x2a, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x32, 0x0e, 0x0a, 0x04, 0x74, 0x65,
	0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x38, 0x0a, 0x45, 0x01, 0x00, 0x00,
	0x00, 0x4a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x52, 0x04, 0x74, 0x65, 0x73, 0x74, 0x1a, 0x08, 0x68,
	0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x1a, 0x08, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f,
	0x2f,
}
