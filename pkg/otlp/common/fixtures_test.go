package common

// keyValueBytes is a delimited KeyValue{"test": "test"}.
var keyValueBytes = []byte{
	0x0e, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74, 0x12, 0x06, 0x0a, 0x04, 0x74, 0x65, 0x73, 0x74,
}
