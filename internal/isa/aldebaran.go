package isa

var aldebaranKernels = map[KernelName][]uint32{
	Noop: {
		0xbf810000, // s_endpgm
	},
	CopyDword: {
		0x7e000200,             // v_mov_b32 v0, s0
		0x7e020201,             // v_mov_b32 v1, s1
		0x7e040202,             // v_mov_b32 v2, s2
		0x7e060203,             // v_mov_b32 v3, s3
		0xdc530000, 0x047f0000, // flat_load_dword v4, v[0:1] slc glc
		0xbf8c0000,             // s_waitcnt 0
		0xdc730000, 0x007f0402, // flat_store_dword v[2:3], v4 slc glc
		0xbf810000, // s_endpgm
	},
	InfiniteLoop: {
		0xbf82ffff, // s_branch loop
		0xbf810000, // s_endpgm
	},
	AtomicAdd: {
		0x7e000200,             // v_mov_b32 v0, s0
		0x7e020201,             // v_mov_b32 v1, s1
		0x7e040281,             // v_mov_b32 v2, 1
		0xdf0b0000, 0x037f0200, // flat_atomic_add v3, v[0:1], v2 slc glc scc
		0xbf8c0000, // s_waitcnt 0
		0xbf810000, // s_endpgm
		0x00000000, // padding
	},
	CustomSGPR: {
		0x7e040202,             // v_mov_b32 v2, s2
		0x7e060203,             // v_mov_b32 v3, s3
		0x7e08020f,             // v_mov_b32 v4, s15
		0xdc730000, 0x007f0402, // flat_store_dword v[2:3], v4 slc glc
		0xbf810000, // s_endpgm
	},
	ScalarSet: {
		0x7e000200,             // v_mov_b32 v0, s0
		0x7e020201,             // v_mov_b32 v1, s1
		0x7e040202,             // v_mov_b32 v2, s2
		0x7e060203,             // v_mov_b32 v3, s3
		0xdc530000, 0x067f0002, // flat_load_dword v6, v[2:3]
		0xbf8c0000,             // s_waitcnt 0
		0x680c0d06,             // v_add_u32 v6, v6, v6
		0xdc730000, 0x007f0600, // flat_store_dword v[0:1], v6 slc glc
		0xbf810000, // s_endpgm
	},
	ScalarAdd: {
		0x7e000200,             // v_mov_b32 v0, s0
		0x7e020201,             // v_mov_b32 v1, s1
		0x7e040202,             // v_mov_b32 v2, s2
		0x7e060203,             // v_mov_b32 v3, s3
		0x7e080204,             // v_mov_b32 v4, s4
		0x7e0a0205,             // v_mov_b32 v5, s5
		0xdc530000, 0x067f0002, // flat_load_dword v6, v[2:3]
		0xdc530000, 0x077f0004, // flat_load_dword v7, v[4:5]
		0xbf8c0000,             // s_waitcnt 0
		0x680c0d07,             // v_add_u32 v6, v6, v7
		0xdc730000, 0x007f0600, // flat_store_dword v[0:1], v6 slc glc
		0xbf810000, // s_endpgm
	},
	VectorSet: {
		0x7e080200, // v_mov_b32 v4, s0
		0x7e0a0201, // v_mov_b32 v5, s1

		0x68020100, // v_add_u32 v1, v0, v0
		0x68020301, // v_add_u32 v1, v1, v1

		0x68080901, // v_add_u32 v4, v4, v1

		0xdc730000, 0x007f0004, // flat_store_dword v[4:5], v0 slc glc

		0xbf810000, // s_endpgm
	},
	VectorAdd: {
		0x7e040202, // v_mov_b32 v2, s2
		0x7e060203, // v_mov_b32 v3, s3
		0x7e080204, // v_mov_b32 v4, s4
		0x7e0a0205, // v_mov_b32 v5, s5
		0x7e0c0200, // v_mov_b32 v6, s0
		0x7e0e0201, // v_mov_b32 v7, s1

		0x68020100, // v_add_u32 v1, v0, v0
		0x68020301, // v_add_u32 v1, v1, v1

		0x68040501, // v_add_u32 v2, v2, v1
		0x68080901, // v_add_u32 v4, v4, v1
		0x680c0d01, // v_add_u32 v6, v6, v1

		0xdc530000, 0x087f0002, // flat_load_dword v8, v[2:3]
		0xdc530000, 0x097f0004, // flat_load_dword v9, v[4:5]
		0xbf8c0000, // s_waitcnt 0

		0x68101109, // v_add_u32 v8, v8, v9

		0xdc730000, 0x007f0806, // flat_store_dword v[6:7], v8 slc glc

		0xbf810000, // s_endpgm
	},
	VectorGroupSet: {
		0x7e080200, // v_mov_b32 v4, s0
		0x7e0a0201, // v_mov_b32 v5, s1

		0x7e020206, // v_mov_b32 v1, s6 (TGID_X)

		0x68020301, // v_add_u32 v1, v1, v1
		0x68020301, // v_add_u32 v1, v1, v1
		0x68020301, // v_add_u32 v1, v1, v1
		0x68020301, // v_add_u32 v1, v1, v1
		0x68020301, // v_add_u32 v1, v1, v1

		0x68040100, // v_add_u32 v2, v0, v0
		0x68040502, // v_add_u32 v2, v2, v2

		0x68020302, // v_add_u32 v1, v1, v2
		0x68080901, // v_add_u32 v4, v4, v1

		0x7e040206, // v_mov_b32 v2, s6 (TGID_X)

		0xdc730000, 0x007f0204, // flat_store_dword v[4:5], v2 slc glc

		0xbf810000, // s_endpgm
	},
	VectorGroupAdd: {
		0x7e080200, // v_mov_b32 v4, s0
		0x7e0a0201, // v_mov_b32 v5, s1
		0x7e0c0202, // v_mov_b32 v6, s2
		0x7e0e0203, // v_mov_b32 v7, s3
		0x7e100204, // v_mov_b32 v8, s4
		0x7e120205, // v_mov_b32 v9, s5

		0x7e020206, // v_mov_b32 v1, s6 (TGID_X)

		0x68020301, // v_add_u32 v1, v1, v1
		0x68020301, // v_add_u32 v1, v1, v1
		0x68020301, // v_add_u32 v1, v1, v1
		0x68020301, // v_add_u32 v1, v1, v1
		0x68020301, // v_add_u32 v1, v1, v1

		0x68040100, // v_add_u32 v2, v0, v0
		0x68040502, // v_add_u32 v2, v2, v2

		0x68020302, // v_add_u32 v1, v1, v2
		0x68080901, // v_add_u32 v4, v4, v1
		0x680c0d01, // v_add_u32 v6, v6, v1
		0x68101101, // v_add_u32 v8, v8, v1

		0xdc530000, 0x0a7f0006, // flat_load_dword v10, v[6:7]
		0xdc530000, 0x0b7f0008, // flat_load_dword v11, v[8:9]
		0xbf8c0000, // s_waitcnt 0

		0x6814150b, // v_add_u32 v10, v10, v11

		0xdc730000, 0x007f0a04, // flat_store_dword v[4:5], v10 slc glc

		0xbf810000, // s_endpgm
	},

	GEMM16x1152x5120: aldebaranGEMM16x1152x5120,
	GEMM16x5120x384:  aldebaranGEMM16x5120x384,
	GEMM16x1280x5120: aldebaranGEMM16x1280x5120,
	GEMM16x5120x1280: aldebaranGEMM16x5120x1280,
}
