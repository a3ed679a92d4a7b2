package metrics

// gaugeRequestBytes is a delimited request holding a gauge.
var gaugeRequestBytes = []byte{
	0xf8, 0x01, 0x0a, 0xf5, 0x01, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0xc8, 0x01, 0x0a, 0x24, 0x0a, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33,
	0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x20, 0x0a, 0x12, 0x89, 0x01, 0x0a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65,
	0x12, 0x10, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69,
	0x6f, 0x6e, 0x1a, 0x09, 0x31, 0x32, 0x33, 0x2e, 0x5b, 0x70, 0x73, 0x69, 0x5d, 0x2a, 0x5f, 0x0a,
	0x5d, 0x3a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73,
	0x74, 0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x19, 0x83, 0xf9, 0x77, 0xfe, 0x6f,
	0x51, 0x55, 0x17, 0x2a, 0x2e, 0x3a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a,
	0x04, 0x74, 0x65, 0x73, 0x74, 0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x22, 0x04,
	0x74, 0x65, 0x73, 0x74, 0x2a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x31, 0x0a, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x40, 0x01, 0x31, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1a, 0x14,
	0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c,
	0x2e, 0x63, 0x6f, 0x6d, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f,
	0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d,
}

// sumRequestBytes is a delimited request holding a sum.
var sumRequestBytes = []byte{
	0xfa, 0x01, 0x0a, 0xf7, 0x01, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0xca, 0x01, 0x0a, 0x24, 0x0a, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33,
	0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x20, 0x0a, 0x12, 0x8b, 0x01, 0x0a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65,
	0x12, 0x10, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69,
	0x6f, 0x6e, 0x1a, 0x09, 0x31, 0x32, 0x33, 0x2e, 0x5b, 0x70, 0x73, 0x69, 0x5d, 0x3a, 0x61, 0x0a,
	0x5d, 0x3a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73,
	0x74, 0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x19, 0x83, 0xf9, 0x77, 0xfe, 0x6f,
	0x51, 0x55, 0x17, 0x2a, 0x2e, 0x3a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a,
	0x04, 0x74, 0x65, 0x73, 0x74, 0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x22, 0x04,
	0x74, 0x65, 0x73, 0x74, 0x2a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x31, 0x0a, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x40, 0x01, 0x31, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x01,
	0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75,
	0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f,
	0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d,
}

// histogramRequestBytes is a delimited request holding a histogram.
var histogramRequestBytes = []byte{
	0xc3, 0x02, 0x0a, 0xc0, 0x02, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0x93, 0x02, 0x0a, 0x24, 0x0a, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33,
	0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x20, 0x0a, 0x12, 0xd4, 0x01, 0x0a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65,
	0x12, 0x10, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69,
	0x6f, 0x6e, 0x1a, 0x09, 0x31, 0x32, 0x33, 0x2e, 0x5b, 0x70, 0x73, 0x69, 0x5d, 0x4a, 0xa9, 0x01,
	0x0a, 0xa4, 0x01, 0x4a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74,
	0x65, 0x73, 0x74, 0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x19, 0x83, 0xf9, 0x77,
	0xfe, 0x6f, 0x51, 0x55, 0x17, 0x21, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x29, 0x9a,
	0x99, 0x99, 0x99, 0x99, 0x99, 0x0d, 0x40, 0x32, 0x18, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x3a, 0x10, 0xcd, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xf4, 0x3f, 0x9a, 0x99, 0x99, 0x99, 0x99,
	0x99, 0x17, 0x40, 0x42, 0x2e, 0x3a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a,
	0x04, 0x74, 0x65, 0x73, 0x74, 0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x22, 0x04,
	0x74, 0x65, 0x73, 0x74, 0x2a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x31, 0x0a, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x50, 0x01, 0x59, 0x9a, 0x99, 0x99, 0x99, 0x99, 0x99, 0xb9, 0x3f, 0x61, 0xcd,
	0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0x23, 0x40, 0x10, 0x02, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73,
	0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d, 0x1a,
	0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75, 0x72,
	0x6c, 0x2e, 0x63, 0x6f, 0x6d,
}

// expHistogramRequestBytes is a delimited request holding an exponential histogram.
var expHistogramRequestBytes = []byte{
	0xcb, 0x02, 0x0a, 0xc8, 0x02, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0x9b, 0x02, 0x0a, 0x24, 0x0a, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33,
	0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x20, 0x0a, 0x12, 0xdc, 0x01, 0x0a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65,
	0x12, 0x10, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69,
	0x6f, 0x6e, 0x1a, 0x09, 0x31, 0x32, 0x33, 0x2e, 0x5b, 0x70, 0x73, 0x69, 0x5d, 0x52, 0xb1, 0x01,
	0x0a, 0xac, 0x01, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74,
	0x65, 0x73, 0x74, 0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x19, 0x83, 0xf9, 0x77,
	0xfe, 0x6f, 0x51, 0x55, 0x17, 0x21, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x29, 0x9a,
	0x99, 0x99, 0x99, 0x99, 0x99, 0x0d, 0x40, 0x30, 0x14, 0x39, 0x0c, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x42, 0x0d, 0x08, 0x02, 0x10, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0x01, 0x4a, 0x0f, 0x08, 0x02, 0x10, 0x00, 0x10, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0x01, 0x50, 0x01, 0x5a, 0x2e, 0x3a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06,
	0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x22,
	0x04, 0x74, 0x65, 0x73, 0x74, 0x2a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x31, 0x0a, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x61, 0x9a, 0x99, 0x99, 0x99, 0x99, 0x99, 0xb9, 0x3f, 0x69, 0xcd, 0xcc,
	0xcc, 0xcc, 0xcc, 0xcc, 0x23, 0x40, 0x71, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x0a, 0x40, 0x10,
	0x02, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f,
	0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f,
	0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d,
}

// summaryRequestBytes is a delimited request holding a summary.
var summaryRequestBytes = []byte{
	0xe4, 0x01, 0x0a, 0xe1, 0x01, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0xb4, 0x01, 0x0a, 0x24, 0x0a, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33,
	0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x20, 0x0a, 0x12, 0x76, 0x0a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12,
	0x10, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f,
	0x6e, 0x1a, 0x09, 0x31, 0x32, 0x33, 0x2e, 0x5b, 0x70, 0x73, 0x69, 0x5d, 0x5a, 0x4c, 0x0a, 0x4a,
	0x3a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x19, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51,
	0x55, 0x17, 0x21, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x29, 0x9a, 0x99, 0x99, 0x99,
	0x99, 0x99, 0x0d, 0x40, 0x32, 0x12, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f, 0x11,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x40, 0x01, 0x1a, 0x14, 0x68, 0x74, 0x74, 0x70,
	0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75, 0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d,
	0x1a, 0x14, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f, 0x73, 0x6f, 0x6d, 0x65, 0x5f, 0x75,
	0x72, 0x6c, 0x2e, 0x63, 0x6f, 0x6d,
}

// invalidSchemaURLRequestBytes is a delimited summary request whose schema URLs have no host.
var invalidSchemaURLRequestBytes = []byte{
	0xcc, 0x01, 0x0a, 0xc9, 0x01, 0x0a, 0x12, 0x0a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12,
	0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x10, 0x0a, 0x12, 0xa8, 0x01, 0x0a, 0x24, 0x0a, 0x09,
	0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x05, 0x31, 0x2e, 0x32, 0x2e, 0x33,
	0x1a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x20, 0x0a, 0x12, 0x76, 0x0a, 0x09, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x6e, 0x61, 0x6d, 0x65, 0x12,
	0x10, 0x74, 0x65, 0x73, 0x74, 0x5f, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f,
	0x6e, 0x1a, 0x09, 0x31, 0x32, 0x33, 0x2e, 0x5b, 0x70, 0x73, 0x69, 0x5d, 0x5a, 0x4c, 0x0a, 0x4a,
	0x3a, 0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
	0x11, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51, 0x55, 0x17, 0x19, 0x83, 0xf9, 0x77, 0xfe, 0x6f, 0x51,
	0x55, 0x17, 0x21, 0x0a, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x29, 0x9a, 0x99, 0x99, 0x99,
	0x99, 0x99, 0x0d, 0x40, 0x32, 0x12, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf0, 0x3f, 0x11,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40, 0x40, 0x01, 0x1a, 0x08, 0x68, 0x74, 0x74, 0x70,
	0x73, 0x3a, 0x2f, 0x2f, 0x1a, 0x08, 0x68, 0x74, 0x74, 0x70, 0x73, 0x3a, 0x2f, 0x2f,
}
