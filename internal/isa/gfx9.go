package isa

// GFX9 has no vector or GEMM encodings; those names resolve to the
// s_endpgm stub.
var gfx9Kernels = map[KernelName][]uint32{
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
		0xdd0b0000, 0x037f0200, // flat_atomic_add v3, v[0:1], v2 slc glc
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
	VectorSet:      endpgm,
	VectorAdd:      endpgm,
	VectorGroupSet: endpgm,
	VectorGroupAdd: endpgm,

	GEMM16x1152x5120: endpgm,
	GEMM16x5120x384:  endpgm,
	GEMM16x1280x5120: endpgm,
	GEMM16x5120x1280: endpgm,
}
