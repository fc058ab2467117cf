package isa

// Fixed-shape half-precision GEMM kernels for ALDEBARAN. Kernel arguments
// arrive pre-loaded: s[0:1] C, s[2:3] A, s[4:5] B, s[6:8] workgroup id.

var aldebaranGEMM16x1152x5120 = []uint32{
	0x20060085, 0x24080082, 0xbe8c0002, 0xbe8d0003, 0xbe8e0004, 0xbe8f0005,
	0xbf800000, 0x8e038407, 0x20160084, 0x261808ff, 0x0000007c, 0x100a06ff,
	0x00000900, 0x8e028706, 0x28261905, 0x2602008f, 0x68141603, 0xb0031400,
	0xd1fe0012, 0x02040513, 0xd2850004, 0x0000070a, 0x24040281, 0xbe8700ff,
	0x00020000, 0x28080504, 0xbe88000e, 0xbe8a00ff, 0x01680000, 0xbe89000f,
	0xbe8b0007, 0x681a24ff, 0x00009000, 0x24280881, 0xe0541000, 0x80020412,
	0xe0541900, 0x80020612, 0xe0541000, 0x8002080d, 0xe0541900, 0x8002100d,
	0x241a0081, 0xd2010002, 0x0409410d, 0xb00e0050, 0x101a060e, 0x24040481,
	0xb0030108, 0xd1fd000d, 0x0409030d, 0x10040603, 0x24181881, 0xd1fe0015,
	0x0206050c, 0x28040688, 0x10040403, 0xbe84000c, 0xbe85000d, 0xbe8300ff,
	0x00012000, 0xbe8600ff, 0x00050000, 0xd1fe000c, 0x02061902, 0x682c2403,
	0x682e24ff, 0x0001b000, 0xe0501000, 0x80010214, 0xe0501040, 0x80011214,
	0xb00d0500, 0x681e180d, 0xd3d94004, 0x18000080, 0x7e0aa504, 0x7e0ca504,
	0x7e0ea504, 0xd3d94000, 0x18000080, 0x24262681, 0xbe8c0080, 0x681c2a0d,
	0xd1fd0013, 0x044d0202, 0x282828ff, 0x00000080, 0xbf8c0f71, 0xd81a0000,
	0x0000020d, 0xd2a00002, 0x00020d04, 0xd2a01803, 0x00020d04, 0xd2a00004,
	0x00020f05, 0xd2a01805, 0x00020f05, 0xd2a00006, 0x00022108, 0xd2a01807,
	0x00022108, 0xd2a00008, 0x00022309, 0xd2a01809, 0x00022309, 0xd9be0500,
	0x00000215, 0xd9be0500, 0x0000060c, 0xe0541000, 0x80020616, 0xe0541900,
	0x80020816, 0xe0541000, 0x80020217, 0xe0541900, 0x80020417, 0x24220085,
	0xd1c8000c, 0x020d0300, 0xd1c80010, 0x02090900, 0x262222a0, 0xd2000011,
	0x04450710, 0x1018180e, 0xd1fe0011, 0x02061911, 0x20180082, 0xd3d84017,
	0x18000105, 0xd2010000, 0x0405610c, 0x102020ff, 0x00000420, 0xd1fd0010,
	0x04410300, 0xd3d94001, 0x18000117, 0xd3d84017, 0x18000106, 0xd1fd0010,
	0x00350310, 0xd3d94002, 0x18000117, 0xd3d84017, 0x18000107, 0x682a20a0,
	0x682c20b0, 0xd3d94003, 0x18000117, 0xbf8cc07f, 0xbf8a0000, 0xd9fe0000,
	0x18000011, 0xd8700100, 0x24000010, 0xd86ec484, 0x26000010, 0xd8700504,
	0x28000015, 0xd8700706, 0x2a000016, 0xbf8cc07f, 0xbf8a0000, 0xbf8cc37f,
	0x7e400324, 0xbf8cc27f, 0x7e420326, 0xbf8c0f74, 0xd81a0000, 0x0000120d,
	0xe0501000, 0x80011214, 0xd3cd8004, 0x04124118, 0xbf8c0f73, 0xd2a0001c,
	0x00021106, 0xd2a0181d, 0x00021106, 0xd2a0001e, 0x00021307, 0xd2a0181f,
	0x00021307, 0xbf8c0f71, 0xd2a00020, 0x00020902, 0xd2a01821, 0x00020902,
	0x6804260c, 0x680804ff, 0x00024000, 0x810c030c, 0xd2a00022, 0x00020b03,
	0xd2a01823, 0x00020b03, 0x682e04ff, 0x0002d000, 0xe0541000, 0x80020604,
	0xe0541900, 0x80020804, 0xe0541000, 0x80020217, 0xbf8cc17f, 0x7e0a032a,
	0x7e080328, 0xbf07ff0c, 0x00b1c000, 0x7e4c0325, 0xd3cd8004, 0x0412091a,
	0xe0541900, 0x80020417, 0x7e540329, 0x682828c0, 0xd9be0000, 0x00001c0e,
	0xd9be0000, 0x0000200f, 0xd3cd8000, 0x04024d18, 0xd3cd8000, 0x0402551a,
	0xbf85ffb4, 0xbf8cc07f, 0xbf8a0000, 0xd9fe0000, 0x14000011, 0xd8700100,
	0x18000010, 0xd86ec484, 0x1c000010, 0x682620a0, 0x684420b0, 0x24000082,
	0xbf8cc17f, 0x7e340318, 0xbf8cc07f, 0x7e36031c, 0x7e380319, 0xbf800000,
	0xd3cd8004, 0x04123514, 0xd8700504, 0x1a000013, 0xd8700706, 0x1e000022,
	0xb0030480, 0xbf8cc07f, 0xbf8a0000, 0xbf8c0f74, 0xd81a0000, 0x0000120d,
	0xbf8cc27f, 0x7e40031a, 0xbf8cc17f, 0x7e42031e, 0xbf8c0f72, 0xd2a00018,
	0x00021106, 0xd2a01819, 0x00021106, 0x7e3c031b, 0xd2a0001a, 0x00021307,
	0xd2a0181b, 0x00021307, 0xbf8c0f70, 0xd2a00006, 0x00020902, 0xd2a01807,
	0x00020902, 0xd2a00008, 0x00020b03, 0xd2a01809, 0x00020b03, 0xd9be0000,
	0x0000180e, 0xd9be0000, 0x0000060f, 0xd3cd8004, 0x04124116, 0xbf8cc07f,
	0xbf8a0000, 0xd9fe0000, 0x02000011, 0xd8700100, 0x06000010, 0xd86ec484,
	0x08000010, 0xd8700504, 0x10000013, 0xd8700706, 0x12000022, 0xbf8cc07f,
	0xbf8a0000, 0xd3cd8000, 0x04023914, 0xbf8cc37f, 0x7e1c0306, 0xbf8cc27f,
	0x7e1e0308, 0x7e100307, 0x260c188c, 0xd200000c, 0x04011106, 0x24000284,
	0xd3cd8004, 0x04121d02, 0xbf8cc07f, 0x7e1e0312, 0x7e1c0310, 0x7e240311,
	0xd3cd8000, 0x04023d16, 0xd3cd8004, 0x04121d04, 0xd3cd8000, 0x04021102,
	0xd2000002, 0x0401110b, 0xbf800007, 0xbf800000, 0xda1a0000, 0x0000040c,
	0xda1a0100, 0x0000050c, 0xda1a0200, 0x0000060c, 0xda1a0300, 0x0000070c,
	0xbf8cc07f, 0xbf8a0000, 0xd9fe0000, 0x06000002, 0xd3cd8000, 0x04022504,
	0xbf8cc07f, 0x7e001506, 0x7e061508, 0x7e0c1509, 0x7e0e1507, 0x24100282,
	0xd2a00001, 0x00020d03, 0xd2850003, 0x0000070a, 0x68060602, 0xd2a00000,
	0x00020f00, 0xbe8300ff, 0x00020000, 0xbe8200ff, 0x00012000, 0xd1fe0004,
	0x02061103, 0xe0741000, 0x80000004, 0xbf8cc07f, 0xbf8a0000, 0xda1a0000,
	0x0000000c, 0xda1a0100, 0x0000010c, 0xda1a0200, 0x0000020c, 0xda1a0300,
	0x0000030c, 0xbf8cc07f, 0xbf8a0000, 0xd9fe0000, 0x00000002, 0xbf8cc07f,
	0x7e001500, 0x7e0a1501, 0x7e041502, 0x7e061503, 0xd2a00000, 0x00020b00,
	0xd2a00001, 0x00020702, 0xe0741080, 0x80000004, 0xbf810000,
}

var aldebaranGEMM16x5120x384 = []uint32{
	0x20060085, 0x24080082, 0xbe8c0002, 0xbe8d0003, 0xbe8e0004, 0xbe8f0005,
	0xbf800000, 0x8e038407, 0x20160084, 0x261a08ff, 0x0000007c, 0x100a06ff,
	0x00002800, 0x8e028706, 0x28261b05, 0x2602008f, 0x68141603, 0xb0030180,
	0xd1fe0012, 0x02040513, 0xd2850004, 0x0000070a, 0x24040281, 0xbe8700ff,
	0x00020000, 0x28080504, 0xbe88000e, 0xbe8a00ff, 0x00780000, 0xbe89000f,
	0xbe8b0007, 0x681824ff, 0x00002000, 0x24280881, 0x681c24ff, 0x00028000,
	0x681e24ff, 0x0002a000, 0xe0541000, 0x80020412, 0xe0541800, 0x8002060c,
	0xe0541000, 0x8002080e, 0xe0541800, 0x8002100f, 0x24180081, 0xd2010002,
	0x0409410c, 0xb00e0050, 0x1018060e, 0x24040481, 0xb0030108, 0xd1fd000c,
	0x0409030c, 0x10040603, 0x241a1a81, 0xd1fe0015, 0x0206050d, 0x28040688,
	0x10040403, 0xbe84000c, 0xbe85000d, 0xbe8300ff, 0x00050000, 0xb0066000,
	0xd1fe000d, 0x02061b02, 0x682c2403, 0x682e24ff, 0x00052000, 0x683024ff,
	0x00078000, 0x683224ff, 0x0007a000, 0xe0501000, 0x80010214, 0xe0501040,
	0x80011214, 0xb00d0500, 0x681e1a0d, 0xd3d94004, 0x18000080, 0x7e0aa504,
	0x7e0ca504, 0x7e0ea504, 0xd3d94000, 0x18000080, 0x24262681, 0xbe8c0080,
	0x681c2a0d, 0xd1fd0013, 0x044d0202, 0x282828ff, 0x00000080, 0xbf8c0f71,
	0xd81a0000, 0x0000020c, 0xd2a00002, 0x00020d04, 0xd2a01803, 0x00020d04,
	0xd2a00004, 0x00020f05, 0xd2a01805, 0x00020f05, 0xd2a00006, 0x00022108,
	0xd2a01807, 0x00022108, 0xd2a00008, 0x00022309, 0xd2a01809, 0x00022309,
	0xd9be0500, 0x00000215, 0xd9be0500, 0x0000060d, 0xe0541000, 0x80020616,
	0xe0541800, 0x80020817, 0xe0541000, 0x80020218, 0xe0541800, 0x80020419,
	0x24220085, 0xd1c8000d, 0x020d0300, 0xd1c80010, 0x02090900, 0x262222a0,
	0xd2000011, 0x04450710, 0x101a1a0e, 0xd1fe0011, 0x02061b11, 0x201a0082,
	0xd3d84017, 0x18000105, 0xd2010000, 0x0405610d, 0x102020ff, 0x00000420,
	0xd1fd0010, 0x04410300, 0xd3d94001, 0x18000117, 0xd3d84017, 0x18000106,
	0xd1fd0010, 0x00350310, 0xd3d94002, 0x18000117, 0xd3d84017, 0x18000107,
	0x682a20a0, 0x682c20b0, 0xd3d94003, 0x18000117, 0xbf8cc07f, 0xbf8a0000,
	0xd9fe0000, 0x18000011, 0xd8700100, 0x24000010, 0xd86ec484, 0x26000010,
	0xd8700504, 0x28000015, 0xd8700706, 0x2a000016, 0xbf8cc07f, 0xbf8a0000,
	0xbf8c0f74, 0xd81a0000, 0x0000120c, 0xe0501000, 0x80011214, 0xbf8c0f73,
	0xd2a0001c, 0x00021106, 0xd2a0181d, 0x00021106, 0xd2a0001e, 0x00021307,
	0xd2a0181f, 0x00021307, 0xbf8cc37f, 0x7e0e0326, 0x7e0c0324, 0xbf8c0f71,
	0xd2a00020, 0x00020902, 0xd2a01821, 0x00020902, 0x6804260c, 0xd2a00022,
	0x00020b03, 0xd2a01823, 0x00020b03, 0x7e4c0325, 0xd3cd8004, 0x04120d18,
	0x810c030c, 0x680804ff, 0x000a0000, 0x680a04ff, 0x000a2000, 0x682e04ff,
	0x000c8000, 0xbf07ff0c, 0x00320000, 0x682828c0, 0xd3cd8000, 0x04024d18,
	0x683004ff, 0x000ca000, 0xe0541000, 0x80020604, 0xe0541800, 0x80020805,
	0xe0541000, 0x80020217, 0xbf8cc17f, 0x7e0a032a, 0x7e080328, 0x7e540329,
	0xd9be0000, 0x00001c0e, 0xd3cd8004, 0x0412091a, 0xe0541800, 0x80020418,
	0xd9be0000, 0x0000200f, 0xd3cd8000, 0x0402551a, 0xbf85ffb1, 0xbf8cc07f,
	0xbf8a0000, 0xd9fe0000, 0x14000011, 0xd8700100, 0x18000010, 0xd86ec484,
	0x1c000010, 0x682620a0, 0x684420b0, 0x24000082, 0xbf8cc17f, 0x7e340318,
	0xbf8cc07f, 0x7e36031c, 0x7e380319, 0xbf800000, 0xd3cd8004, 0x04123514,
	0xd8700504, 0x1a000013, 0xd8700706, 0x1e000022, 0xb0031400, 0xbf8cc07f,
	0xbf8a0000, 0xbf8c0f74, 0xd81a0000, 0x0000120c, 0xbf8cc27f, 0x7e40031a,
	0xbf8cc17f, 0x7e42031e, 0xbf8c0f72, 0xd2a00018, 0x00021106, 0xd2a01819,
	0x00021106, 0x7e3c031b, 0xd2a0001a, 0x00021307, 0xd2a0181b, 0x00021307,
	0xbf8c0f70, 0xd2a00006, 0x00020902, 0xd2a01807, 0x00020902, 0xd2a00008,
	0x00020b03, 0xd2a01809, 0x00020b03, 0xd9be0000, 0x0000180e, 0xd9be0000,
	0x0000060f, 0xd3cd8004, 0x04124116, 0xbf8cc07f, 0xbf8a0000, 0xd9fe0000,
	0x02000011, 0xd8700100, 0x06000010, 0xd86ec484, 0x08000010, 0xd8700504,
	0x10000013, 0xd8700706, 0x12000022, 0xbf8cc07f, 0xbf8a0000, 0xd3cd8000,
	0x04023914, 0xbf8cc37f, 0x7e1c0306, 0xbf8cc27f, 0x7e1e0308, 0x7e100307,
	0x260c1a8c, 0xd200000c, 0x04011106, 0x24000284, 0xd3cd8004, 0x04121d02,
	0xbf8cc07f, 0x7e1e0312, 0x7e1c0310, 0x7e240311, 0xd3cd8000, 0x04023d16,
	0xd3cd8004, 0x04121d04, 0xd3cd8000, 0x04021102, 0xd2000002, 0x0401110b,
	0xbf800007, 0xbf800000, 0xda1a0000, 0x0000040c, 0xda1a0100, 0x0000050c,
	0xda1a0200, 0x0000060c, 0xda1a0300, 0x0000070c, 0xbf8cc07f, 0xbf8a0000,
	0xd9fe0000, 0x06000002, 0xd3cd8000, 0x04022504, 0xbf8cc07f, 0x7e001506,
	0x7e061508, 0x7e0c1509, 0x7e0e1507, 0x24100282, 0xd2a00001, 0x00020d03,
	0xd2850003, 0x0000070a, 0x68060602, 0xd2a00000, 0x00020f00, 0xbe8300ff,
	0x00020000, 0xbe8200ff, 0x00050000, 0xd1fe0004, 0x02061103, 0xe0741000,
	0x80000004, 0xbf8cc07f, 0xbf8a0000, 0xda1a0000, 0x0000000c, 0xda1a0100,
	0x0000010c, 0xda1a0200, 0x0000020c, 0xda1a0300, 0x0000030c, 0xbf8cc07f,
	0xbf8a0000, 0xd9fe0000, 0x00000002, 0xbf8cc07f, 0x7e001500, 0x7e0a1501,
	0x7e041502, 0x7e061503, 0xd2a00000, 0x00020b00, 0xd2a00001, 0x00020702,
	0xe0741080, 0x80000004, 0xbf810000,
}

var aldebaranGEMM16x1280x5120 = []uint32{
	0x20060085, 0x24080082, 0xbe8c0002, 0xbe8d0003, 0xbe8e0004, 0xbe8f0005,
	0xbf800000, 0x8e038407, 0x20160084, 0x261808ff, 0x0000007c, 0x100a06ff,
	0x00000a00, 0x8e028706, 0x28261905, 0x2602008f, 0x68141603, 0xb0031400,
	0xd1fe0012, 0x02040513, 0xd2850004, 0x0000070a, 0x24040281, 0xbe8700ff,
	0x00020000, 0x28080504, 0xbe88000e, 0xbe8a00ff, 0x01900000, 0xbe89000f,
	0xbe8b0007, 0x681a24ff, 0x0000a000, 0x24280881, 0xe0541000, 0x80020412,
	0xe0541a00, 0x80020612, 0xe0541000, 0x8002080d, 0xe0541a00, 0x8002100d,
	0x241a0081, 0xd2010002, 0x0409410d, 0xb00e0050, 0x101a060e, 0x24040481,
	0xb0030108, 0xd1fd000d, 0x0409030d, 0x10040603, 0x24181881, 0xd1fe0015,
	0x0206050c, 0x28040688, 0x10040403, 0xbe84000c, 0xbe85000d, 0xbe8300ff,
	0x00014000, 0xbe8600ff, 0x00050000, 0xd1fe000c, 0x02061902, 0x682c2403,
	0x682e24ff, 0x0001e000, 0xe0501000, 0x80010214, 0xe0501040, 0x80011214,
	0xb00d0500, 0x681e180d, 0xd3d94004, 0x18000080, 0x7e0aa504, 0x7e0ca504,
	0x7e0ea504, 0xd3d94000, 0x18000080, 0x24262681, 0xbe8c0080, 0x681c2a0d,
	0xd1fd0013, 0x044d0202, 0x282828ff, 0x00000080, 0xbf8c0f71, 0xd81a0000,
	0x0000020d, 0xd2a00002, 0x00020d04, 0xd2a01803, 0x00020d04, 0xd2a00004,
	0x00020f05, 0xd2a01805, 0x00020f05, 0xd2a00006, 0x00022108, 0xd2a01807,
	0x00022108, 0xd2a00008, 0x00022309, 0xd2a01809, 0x00022309, 0xd9be0500,
	0x00000215, 0xd9be0500, 0x0000060c, 0xe0541000, 0x80020616, 0xe0541a00,
	0x80020816, 0xe0541000, 0x80020217, 0xe0541a00, 0x80020417, 0x24220085,
	0xd1c8000c, 0x020d0300, 0xd1c80010, 0x02090900, 0x262222a0, 0xd2000011,
	0x04450710, 0x1018180e, 0xd1fe0011, 0x02061911, 0x20180082, 0xd3d84017,
	0x18000105, 0xd2010000, 0x0405610c, 0x102020ff, 0x00000420, 0xd1fd0010,
	0x04410300, 0xd3d94001, 0x18000117, 0xd3d84017, 0x18000106, 0xd1fd0010,
	0x00350310, 0xd3d94002, 0x18000117, 0xd3d84017, 0x18000107, 0x682a20a0,
	0x682c20b0, 0xd3d94003, 0x18000117, 0xbf8cc07f, 0xbf8a0000, 0xd9fe0000,
	0x18000011, 0xd8700100, 0x24000010, 0xd86ec484, 0x26000010, 0xd8700504,
	0x28000015, 0xd8700706, 0x2a000016, 0xbf8cc07f, 0xbf8a0000, 0xbf8cc37f,
	0x7e400324, 0xbf8cc27f, 0x7e420326, 0xbf8c0f74, 0xd81a0000, 0x0000120d,
	0xe0501000, 0x80011214, 0xd3cd8004, 0x04124118, 0xbf8c0f73, 0xd2a0001c,
	0x00021106, 0xd2a0181d, 0x00021106, 0xd2a0001e, 0x00021307, 0xd2a0181f,
	0x00021307, 0xbf8c0f71, 0xd2a00020, 0x00020902, 0xd2a01821, 0x00020902,
	0x6804260c, 0x680804ff, 0x00028000, 0x810c030c, 0xd2a00022, 0x00020b03,
	0xd2a01823, 0x00020b03, 0x682e04ff, 0x00032000, 0xe0541000, 0x80020604,
	0xe0541a00, 0x80020804, 0xe0541000, 0x80020217, 0xbf8cc17f, 0x7e0a032a,
	0x7e080328, 0xbf07ff0c, 0x00c58000, 0x7e4c0325, 0xd3cd8004, 0x0412091a,
	0xe0541a00, 0x80020417, 0x7e540329, 0x682828c0, 0xd9be0000, 0x00001c0e,
	0xd9be0000, 0x0000200f, 0xd3cd8000, 0x04024d18, 0xd3cd8000, 0x0402551a,
	0xbf85ffb4, 0xbf8cc07f, 0xbf8a0000, 0xd9fe0000, 0x14000011, 0xd8700100,
	0x18000010, 0xd86ec484, 0x1c000010, 0x682620a0, 0x684420b0, 0x24000082,
	0xbf8cc17f, 0x7e340318, 0xbf8cc07f, 0x7e36031c, 0x7e380319, 0xbf800000,
	0xd3cd8004, 0x04123514, 0xd8700504, 0x1a000013, 0xd8700706, 0x1e000022,
	0xb0030500, 0xbf8cc07f, 0xbf8a0000, 0xbf8c0f74, 0xd81a0000, 0x0000120d,
	0xbf8cc27f, 0x7e40031a, 0xbf8cc17f, 0x7e42031e, 0xbf8c0f72, 0xd2a00018,
	0x00021106, 0xd2a01819, 0x00021106, 0x7e3c031b, 0xd2a0001a, 0x00021307,
	0xd2a0181b, 0x00021307, 0xbf8c0f70, 0xd2a00006, 0x00020902, 0xd2a01807,
	0x00020902, 0xd2a00008, 0x00020b03, 0xd2a01809, 0x00020b03, 0xd9be0000,
	0x0000180e, 0xd9be0000, 0x0000060f, 0xd3cd8004, 0x04124116, 0xbf8cc07f,
	0xbf8a0000, 0xd9fe0000, 0x02000011, 0xd8700100, 0x06000010, 0xd86ec484,
	0x08000010, 0xd8700504, 0x10000013, 0xd8700706, 0x12000022, 0xbf8cc07f,
	0xbf8a0000, 0xd3cd8000, 0x04023914, 0xbf8cc37f, 0x7e1c0306, 0xbf8cc27f,
	0x7e1e0308, 0x7e100307, 0x260c188c, 0xd200000c, 0x04011106, 0x24000284,
	0xd3cd8004, 0x04121d02, 0xbf8cc07f, 0x7e1e0312, 0x7e1c0310, 0x7e240311,
	0xd3cd8000, 0x04023d16, 0xd3cd8004, 0x04121d04, 0xd3cd8000, 0x04021102,
	0xd2000002, 0x0401110b, 0xbf800007, 0xbf800000, 0xda1a0000, 0x0000040c,
	0xda1a0100, 0x0000050c, 0xda1a0200, 0x0000060c, 0xda1a0300, 0x0000070c,
	0xbf8cc07f, 0xbf8a0000, 0xd9fe0000, 0x06000002, 0xd3cd8000, 0x04022504,
	0xbf8cc07f, 0x7e001506, 0x7e061508, 0x7e0c1509, 0x7e0e1507, 0x24100282,
	0xd2a00001, 0x00020d03, 0xd2850003, 0x0000070a, 0x68060602, 0xd2a00000,
	0x00020f00, 0xbe8300ff, 0x00020000, 0xbe8200ff, 0x00014000, 0xd1fe0004,
	0x02061103, 0xe0741000, 0x80000004, 0xbf8cc07f, 0xbf8a0000, 0xda1a0000,
	0x0000000c, 0xda1a0100, 0x0000010c, 0xda1a0200, 0x0000020c, 0xda1a0300,
	0x0000030c, 0xbf8cc07f, 0xbf8a0000, 0xd9fe0000, 0x00000002, 0xbf8cc07f,
	0x7e001500, 0x7e0a1501, 0x7e041502, 0x7e061503, 0xd2a00000, 0x00020b00,
	0xd2a00001, 0x00020702, 0xe0741080, 0x80000004, 0xbf810000,
}

var aldebaranGEMM16x5120x1280 = []uint32{
	0x20060085, 0x24080082, 0xbe8c0002, 0xbe8d0003, 0xbe8e0004, 0xbe8f0005,
	0xbf800000, 0x8e038407, 0x20160084, 0x261808ff, 0x0000007c, 0x100a06ff,
	0x00002800, 0x8e028706, 0x28261905, 0x2602008f, 0x68141603, 0xb0100500,
	0xd1fe0012, 0x02040513, 0xbe8700ff, 0x00020000, 0x24040281, 0xd2850004,
	0x0000210a, 0x28080504, 0xbe8a00ff, 0x01900000, 0xbe88000e, 0xbe89000f,
	0xbe8b0007, 0x681a24ff, 0x00002000, 0x24280881, 0x681c24ff, 0x00028000,
	0x681e24ff, 0x0002a000, 0xe0541000, 0x80020412, 0xe0541800, 0x8002060d,
	0xe0541000, 0x8002080e, 0xe0541800, 0x8002100f, 0x241a0081, 0xd2010002,
	0x0409410d, 0xbe85000d, 0xb00d0050, 0x101a060d, 0x24040481, 0xb0030108,
	0xd1fd000d, 0x0409030d, 0x10040603, 0x24181881, 0xd1fe0015, 0x0206050c,
	0x28040688, 0x10040403, 0xbe84000c, 0xbe8300ff, 0x00050000, 0xbe8600ff,
	0x00014000, 0xd1fe000c, 0x02061902, 0x682c2403, 0x682e24ff, 0x00052000,
	0x683024ff, 0x00078000, 0x683224ff, 0x0007a000, 0xe0501000, 0x80010214,
	0xe0501040, 0x80011214, 0x681e1810, 0xd3d94004, 0x18000080, 0x7e0aa504,
	0x7e0ca504, 0x7e0ea504, 0xd3d94000, 0x18000080, 0x24262681, 0xbe8c0080,
	0x681c2a10, 0xd1fd0013, 0x044d0202, 0x282828ff, 0x00000080, 0xbf8c0f71,
	0xd81a0000, 0x0000020d, 0xd2a00002, 0x00020d04, 0xd2a01803, 0x00020d04,
	0xd2a00004, 0x00020f05, 0xd2a01805, 0x00020f05, 0xd2a00006, 0x00022108,
	0xd2a01807, 0x00022108, 0xd2a00008, 0x00022309, 0xd2a01809, 0x00022309,
	0xd9be0500, 0x00000215, 0xd9be0500, 0x0000060c, 0xe0541000, 0x80020616,
	0xe0541800, 0x80020817, 0xe0541000, 0x80020218, 0xe0541800, 0x80020419,
	0x24220085, 0xd1c8000c, 0x020d0300, 0xd1c80010, 0x02090900, 0x262222a0,
	0xd2000011, 0x04450710, 0x1018180d, 0xd1fe0011, 0x02061911, 0x20180082,
	0xd3d84017, 0x18000105, 0xd2010000, 0x0405610c, 0x102020ff, 0x00000420,
	0xd1fd0010, 0x04410300, 0xd3d94001, 0x18000117, 0xd3d84017, 0x18000106,
	0xd1fd0010, 0x00410310, 0xd3d94002, 0x18000117, 0xd3d84017, 0x18000107,
	0x682a20a0, 0x682c20b0, 0xd3d94003, 0x18000117, 0xbf8cc07f, 0xbf8a0000,
	0xd9fe0000, 0x18000011, 0xd8700100, 0x24000010, 0xd86ec484, 0x26000010,
	0xd8700504, 0x28000015, 0xd8700706, 0x2a000016, 0xbf8cc07f, 0xbf8a0000,
	0xbf8c0f74, 0xd81a0000, 0x0000120d, 0xe0501000, 0x80011214, 0xbf8c0f73,
	0xd2a0001c, 0x00021106, 0xd2a0181d, 0x00021106, 0xd2a0001e, 0x00021307,
	0xd2a0181f, 0x00021307, 0xbf8cc37f, 0x7e0e0326, 0x7e0c0324, 0xbf8c0f71,
	0xd2a00020, 0x00020902, 0xd2a01821, 0x00020902, 0x6804260c, 0xd2a00022,
	0x00020b03, 0xd2a01823, 0x00020b03, 0x7e4c0325, 0xd3cd8004, 0x04120d18,
	0x810c030c, 0x680804ff, 0x000a0000, 0x680a04ff, 0x000a2000, 0x682e04ff,
	0x000c8000, 0xbf07ff0c, 0x00be0000, 0x682828c0, 0xd3cd8000, 0x04024d18,
	0x683004ff, 0x000ca000, 0xe0541000, 0x80020604, 0xe0541800, 0x80020805,
	0xe0541000, 0x80020217, 0xbf8cc17f, 0x7e0a032a, 0x7e080328, 0x7e540329,
	0xd9be0000, 0x00001c0e, 0xd3cd8004, 0x0412091a, 0xe0541800, 0x80020418,
	0xd9be0000, 0x0000200f, 0xd3cd8000, 0x0402551a, 0xbf85ffb1, 0xbf8cc07f,
	0xbf8a0000, 0xd9fe0000, 0x14000011, 0xd8700100, 0x18000010, 0xd86ec484,
	0x1c000010, 0x682620a0, 0x684420b0, 0x24000082, 0xbf8cc17f, 0x7e340318,
	0xbf8cc07f, 0x7e36031c, 0x7e380319, 0xbf800000, 0xd3cd8004, 0x04123514,
	0xd8700504, 0x1a000013, 0xd8700706, 0x1e000022, 0xb0031400, 0xbf8cc07f,
	0xbf8a0000, 0xbf8c0f74, 0xd81a0000, 0x0000120d, 0xbf8cc27f, 0x7e40031a,
	0xbf8cc17f, 0x7e42031e, 0xbf8c0f72, 0xd2a00018, 0x00021106, 0xd2a01819,
	0x00021106, 0x7e3c031b, 0xd2a0001a, 0x00021307, 0xd2a0181b, 0x00021307,
	0xbf8c0f70, 0xd2a00006, 0x00020902, 0xd2a01807, 0x00020902, 0xd2a00008,
	0x00020b03, 0xd2a01809, 0x00020b03, 0xd9be0000, 0x0000180e, 0xd9be0000,
	0x0000060f, 0xd3cd8004, 0x04124116, 0xbf8cc07f, 0xbf8a0000, 0xd9fe0000,
	0x02000011, 0xd8700100, 0x06000010, 0xd86ec484, 0x08000010, 0xd8700504,
	0x10000013, 0xd8700706, 0x12000022, 0xbf8cc07f, 0xbf8a0000, 0xd3cd8000,
	0x04023914, 0xbf8cc37f, 0x7e1c0306, 0xbf8cc27f, 0x7e1e0308, 0x7e100307,
	0x260c188c, 0xd200000c, 0x04011106, 0x24000284, 0xd3cd8004, 0x04121d02,
	0xbf8cc07f, 0x7e1e0312, 0x7e1c0310, 0x7e240311, 0xd3cd8000, 0x04023d16,
	0xd3cd8004, 0x04121d04, 0xd3cd8000, 0x04021102, 0xd2000002, 0x0401110b,
	0xbf800007, 0xbf800000, 0xda1a0000, 0x0000040c, 0xda1a0100, 0x0000050c,
	0xda1a0200, 0x0000060c, 0xda1a0300, 0x0000070c, 0xbf8cc07f, 0xbf8a0000,
	0xd9fe0000, 0x06000002, 0xd3cd8000, 0x04022504, 0xbf8cc07f, 0x7e001506,
	0x7e061508, 0x7e0c1509, 0x7e0e1507, 0x24100282, 0xd2a00001, 0x00020d03,
	0xd2850003, 0x0000070a, 0x68060602, 0xd2a00000, 0x00020f00, 0xbe8300ff,
	0x00020000, 0xbe8200ff, 0x00050000, 0xd1fe0004, 0x02061103, 0xe0741000,
	0x80000004, 0xbf8cc07f, 0xbf8a0000, 0xda1a0000, 0x0000000c, 0xda1a0100,
	0x0000010c, 0xda1a0200, 0x0000020c, 0xda1a0300, 0x0000030c, 0xbf8cc07f,
	0xbf8a0000, 0xd9fe0000, 0x00000002, 0xbf8cc07f, 0x7e001500, 0x7e0a1501,
	0x7e041502, 0x7e061503, 0xd2a00000, 0x00020b00, 0xd2a00001, 0x00020702,
	0xe0741080, 0x80000004, 0xbf810000,
}
