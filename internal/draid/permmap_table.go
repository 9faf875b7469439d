package draid

// mapEntry is one row of the hard-coded dRAID permutation-seed table.
type mapEntry struct {
	children uint64
	nperms   uint64
	seed     uint64
	checksum uint64
}

// draidMaps is the fixed table of (children, nperms, seed, checksum)
// tuples used to regenerate a dRAID's permutation map at every open.
// This table must never change: existing pools depend on reproducing
// the exact mapping it was created from. It covers children in [2,255];
// values outside that range fail ErrNoEntry. Transcribed verbatim from
// the reference dRAID implementation's draid_maps[] table.
var draidMaps = [254]mapEntry{
	{children: 2, nperms: 256, seed: 0xd27b123486e72fe2, checksum: 0x000000003848433d},
	{children: 3, nperms: 256, seed: 0x625f944e90fc7b1f, checksum: 0x00000000a8bfd5c4},
	{children: 4, nperms: 256, seed: 0xc9ea9ec82340c885, checksum: 0x00000001819d7c69},
	{children: 5, nperms: 256, seed: 0xf46733b7f4d47dfd, checksum: 0x00000002a1648d74},
	{children: 6, nperms: 256, seed: 0x88c3c62d8585b362, checksum: 0x00000003d3b0c2c4},
	{children: 7, nperms: 256, seed: 0xb60bf1766a5ae0bd, checksum: 0x0000000532571d69},
	{children: 8, nperms: 256, seed: 0xe98930e3c5d2e90a, checksum: 0x00000006edfb0329},
	{children: 9, nperms: 256, seed: 0x5a5430036b982ccb, checksum: 0x00000008ceaf6934},
	{children: 10, nperms: 256, seed: 0x835aa99465b2144e, checksum: 0x0000000b5e2e3164},
	{children: 11, nperms: 256, seed: 0x74ccebf1dcf3ae80, checksum: 0x0000000dd691358c},
	{children: 12, nperms: 256, seed: 0x1066c9233dd86924, checksum: 0x000000108eb93aaf},
	{children: 13, nperms: 256, seed: 0x7481b56debf0e637, checksum: 0x0000001424121fe4},
	{children: 14, nperms: 256, seed: 0x559b8c44065f8967, checksum: 0x00000016ab2ff079},
	{children: 15, nperms: 256, seed: 0x34c49545a2ee7f01, checksum: 0x0000001a6028efd6},
	{children: 16, nperms: 256, seed: 0x4ebc50d1ac2e964f, checksum: 0x0000001db337b2bd},
	{children: 17, nperms: 256, seed: 0xb25b240b051dcfe0, checksum: 0x000000219d7efc4e},
	{children: 18, nperms: 256, seed: 0x79606dfe4b053b1f, checksum: 0x0000002680164399},
	{children: 19, nperms: 256, seed: 0x892e343f2f31d690, checksum: 0x00000029eb392835},
	{children: 20, nperms: 256, seed: 0x7a98ffad8a39b449, checksum: 0x0000002fe8fe2087},
	{children: 21, nperms: 256, seed: 0x4b3cbabf9cfb1d0f, checksum: 0x00000036363a2408},
	{children: 22, nperms: 256, seed: 0xf45c77abb4f035d4, checksum: 0x00000038dd0f3e84},
	{children: 23, nperms: 256, seed: 0x541b50c5ff1b281b, checksum: 0x0000003f6a371b02},
	{children: 24, nperms: 256, seed: 0xab0666c148ed3a60, checksum: 0x0000004583a52f77},
	{children: 25, nperms: 256, seed: 0xd82c5eaad94c5e5b, checksum: 0x0000004c40869188},
	{children: 26, nperms: 256, seed: 0x3a42dfda4eb880f7, checksum: 0x000000522c719bba},
	{children: 27, nperms: 256, seed: 0xd200d2fc6b54bf60, checksum: 0x0000005760b4fdf5},
	{children: 28, nperms: 256, seed: 0xaf07d893ffd1986e, checksum: 0x0000005e0dc49ab0},
	{children: 29, nperms: 256, seed: 0xc761779e63cd762f, checksum: 0x00000067be3cd85c},
	{children: 30, nperms: 256, seed: 0xca577b1e07f85ca5, checksum: 0x0000006f5517f3e4},
	{children: 31, nperms: 256, seed: 0xfd50a593c518b3d4, checksum: 0x0000007370e7778f},
	{children: 32, nperms: 256, seed: 0x220c7a6cb145fd23, checksum: 0x0000007d9d9fa78f},
	{children: 33, nperms: 256, seed: 0xeebbb3d6d40970a5, checksum: 0x00000083a14e3e60},
	{children: 34, nperms: 256, seed: 0xc94fe19955410228, checksum: 0x0000008f63355eac},
	{children: 35, nperms: 256, seed: 0xb3657369900a545c, checksum: 0x00000095a7c566eb},
	{children: 36, nperms: 256, seed: 0x1d1fa86e430aed40, checksum: 0x0000009cff7669fb},
	{children: 37, nperms: 256, seed: 0x41d4567a236661cb, checksum: 0x000000a7d66b278b},
	{children: 38, nperms: 256, seed: 0x72876b9ff093b21c, checksum: 0x000000ae9bc47f33},
	{children: 39, nperms: 256, seed: 0xf5a7e1ea513951c2, checksum: 0x000000bcb616da83},
	{children: 40, nperms: 256, seed: 0x1f86f0f407867aad, checksum: 0x000000c30e0445f3},
	{children: 41, nperms: 256, seed: 0xc70c00ed99f77eae, checksum: 0x000000cd23b394fd},
	{children: 42, nperms: 256, seed: 0x47597ce12c6de3f5, checksum: 0x000000d7a3ac5add},
	{children: 43, nperms: 256, seed: 0x7257467388cb31e6, checksum: 0x000000e266068ab0},
	{children: 44, nperms: 256, seed: 0xe36feeacae79ea7a, checksum: 0x000000eeac6dc5e6},
	{children: 45, nperms: 256, seed: 0x57f3441d83fb9eb9, checksum: 0x000000f5f65de1b5},
	{children: 46, nperms: 256, seed: 0xcb89e7b41fcfede7, checksum: 0x000001032761176b},
	{children: 47, nperms: 256, seed: 0x1d893b5b937e5aea, checksum: 0x00000117017c4b5c},
	{children: 48, nperms: 256, seed: 0x2878979d4c91c493, checksum: 0x000001183c88612d},
	{children: 49, nperms: 256, seed: 0x63f19c2ce78edeee, checksum: 0x000001296ed0ee44},
	{children: 50, nperms: 256, seed: 0x1e1d40408bc716aa, checksum: 0x00000134cff620b1},
	{children: 51, nperms: 256, seed: 0x2fcb046eeb1f207b, checksum: 0x0000013f67caf09c},
	{children: 52, nperms: 256, seed: 0x51d9ee3ca622717f, checksum: 0x0000014c447c9d87},
	{children: 53, nperms: 256, seed: 0x35e35cb929826075, checksum: 0x0000015ba72c76c0},
	{children: 54, nperms: 256, seed: 0x3a9ec2b0829222c9, checksum: 0x00000168979646be},
	{children: 55, nperms: 256, seed: 0xd955efca98a311df, checksum: 0x000001789b9cce52},
	{children: 56, nperms: 256, seed: 0x445d2f84ade3469f, checksum: 0x0000018564732e7d},
	{children: 57, nperms: 256, seed: 0x26b57da7b1e97273, checksum: 0x0000019531d42382},
	{children: 58, nperms: 256, seed: 0xdf7a90179e22dd3f, checksum: 0x0000019e491ef47f},
	{children: 59, nperms: 256, seed: 0xe032972b59b70972, checksum: 0x000001acac08341f},
	{children: 60, nperms: 256, seed: 0xb343e4cd3d287ddc, checksum: 0x000001bb444b5e46},
	{children: 61, nperms: 256, seed: 0xd8d4e54c3df7e3a7, checksum: 0x000001c58fcda563},
	{children: 62, nperms: 256, seed: 0x44334cc530fb29ba, checksum: 0x000001dc18d75844},
	{children: 63, nperms: 256, seed: 0x65ad35d57c47f507, checksum: 0x000001ecae361bba},
	{children: 64, nperms: 256, seed: 0x2a3825f8c282e99f, checksum: 0x000001f84a07afec},
	{children: 65, nperms: 256, seed: 0x834c9d0d3597a504, checksum: 0x0000020bfd6d436c},
	{children: 66, nperms: 256, seed: 0x1d9e7b06f6c07a10, checksum: 0x0000021ea362bb87},
	{children: 67, nperms: 256, seed: 0x6cc1b2e96739fa55, checksum: 0x000002265cdb7cce},
	{children: 68, nperms: 256, seed: 0xcfe89dfa4292bc17, checksum: 0x00000233104ac39b},
	{children: 69, nperms: 256, seed: 0x438becb1fd00d4c2, checksum: 0x000002505926acb4},
	{children: 70, nperms: 256, seed: 0xf5b7e58a298b866c, checksum: 0x0000025bbc74fbed},
	{children: 71, nperms: 256, seed: 0x0f43ba704002fc93, checksum: 0x000002736934b7f3},
	{children: 72, nperms: 256, seed: 0xf21c038144492c6f, checksum: 0x0000027ccabc9669},
	{children: 73, nperms: 256, seed: 0xe3ab5428b9f7df94, checksum: 0x00000292e4ee9451},
	{children: 74, nperms: 256, seed: 0x2b81da6ec6a9963d, checksum: 0x000002a3e4435d6c},
	{children: 75, nperms: 256, seed: 0xf40420342b450c83, checksum: 0x000002c30448b817},
	{children: 76, nperms: 256, seed: 0x7ce590e7e8817733, checksum: 0x000002cdfca4e1d9},
	{children: 77, nperms: 256, seed: 0x663670846e05bb4b, checksum: 0x000002dfec572132},
	{children: 78, nperms: 256, seed: 0xa19572c41899d080, checksum: 0x000002ed12dd46a0},
	{children: 79, nperms: 256, seed: 0x5e07613ecf057f41, checksum: 0x0000030aed6e6447},
	{children: 80, nperms: 256, seed: 0xf4595de38313a5d3, checksum: 0x000003159f7397a1},
	{children: 81, nperms: 256, seed: 0xc54089d7d084125a, checksum: 0x0000033234b59ff5},
	{children: 82, nperms: 256, seed: 0xf908340da38c477b, checksum: 0x00000339d35d1583},
	{children: 83, nperms: 256, seed: 0xcfcded7072046406, checksum: 0x000003504c96061c},
	{children: 84, nperms: 256, seed: 0x2af7e558a7e0f844, checksum: 0x000003705d412574},
	{children: 85, nperms: 256, seed: 0x37eb43e6bf49f751, checksum: 0x0000037f68370ad3},
	{children: 86, nperms: 256, seed: 0x99de847b1bb599b0, checksum: 0x0000039721fa3c62},
	{children: 87, nperms: 256, seed: 0x23688c8037026ffd, checksum: 0x000003af9d3e8d8f},
	{children: 88, nperms: 256, seed: 0x3eb1120addbc60c1, checksum: 0x000003c441d3ee37},
	{children: 89, nperms: 256, seed: 0x7e9a8a06b63f9603, checksum: 0x000003d7ab303470},
	{children: 90, nperms: 256, seed: 0xd6f6f1850d1119c6, checksum: 0x000003e87888f4d2},
	{children: 91, nperms: 256, seed: 0x16946b638e95845b, checksum: 0x000004091e6b0f69},
	{children: 92, nperms: 256, seed: 0x2bc491717f9cd131, checksum: 0x0000042146e172aa},
	{children: 93, nperms: 256, seed: 0x054affaef1562f3b, checksum: 0x0000042f674b14cc},
	{children: 94, nperms: 256, seed: 0x54375dde674a6684, checksum: 0x0000044c0df12ea6},
	{children: 95, nperms: 256, seed: 0xa052855253694818, checksum: 0x000004664c08a41f},
	{children: 96, nperms: 256, seed: 0xfc0849afa9f3604a, checksum: 0x00000479b7cefede},
	{children: 97, nperms: 256, seed: 0x2908de4f98003934, checksum: 0x0000048c02c0806e},
	{children: 98, nperms: 256, seed: 0xf8be7e271d7e53b5, checksum: 0x0000049e9e828659},
	{children: 99, nperms: 256, seed: 0x1b9435fdab22a5dd, checksum: 0x000004c6070139f9},
	{children: 100, nperms: 256, seed: 0x2a17c2b63f3943e1, checksum: 0x000004da13183b24},
	{children: 101, nperms: 256, seed: 0x8ae2ee0facdb9938, checksum: 0x000004ec59eb8413},
	{children: 102, nperms: 256, seed: 0x583c2f6cded9d3a9, checksum: 0x0000050d25afb497},
	{children: 103, nperms: 256, seed: 0x93a173e7214e3dfa, checksum: 0x0000051ad37854d9},
	{children: 104, nperms: 256, seed: 0x78af3e86fccdbc29, checksum: 0x0000053f32a84d94},
	{children: 105, nperms: 256, seed: 0x03367c2f007f7dac, checksum: 0x00000552d02bff16},
	{children: 106, nperms: 256, seed: 0x6fbce373324789ec, checksum: 0x00000577c4e9b8ee},
	{children: 107, nperms: 256, seed: 0x93e4e36a6e6e1902, checksum: 0x0000058f22ad9b3d},
	{children: 108, nperms: 256, seed: 0xbad08bd583345655, checksum: 0x000005a22c650669},
	{children: 109, nperms: 256, seed: 0xc3e137ae1dbe8f41, checksum: 0x000005d1e236f82c},
	{children: 110, nperms: 256, seed: 0x0f55a3fe5723ea92, checksum: 0x000005d7e3592444},
	{children: 111, nperms: 256, seed: 0xa55f7f8bdf9a66cf, checksum: 0x000005f1c8b42e4e},
	{children: 112, nperms: 256, seed: 0xa42b5f8c23f7a65c, checksum: 0x00000614209d4444},
	{children: 113, nperms: 256, seed: 0xe04327a36da3c095, checksum: 0x000006409793dc82},
	{children: 114, nperms: 256, seed: 0x5e1c0cafcaff22c5, checksum: 0x0000063cb330ca51},
	{children: 115, nperms: 256, seed: 0x947eeebeaa418c7b, checksum: 0x0000067de838040c},
	{children: 116, nperms: 256, seed: 0x827a7e53c45fd591, checksum: 0x00000691654028c2},
	{children: 117, nperms: 256, seed: 0xee6c6422508b8081, checksum: 0x000006c73cd1f5ca},
	{children: 118, nperms: 256, seed: 0x8d10f85f77136c9b, checksum: 0x000006b780c28a86},
	{children: 119, nperms: 256, seed: 0x3ac37b68ece309f7, checksum: 0x000006dc2a3372d5},
	{children: 120, nperms: 256, seed: 0xfac222ae91b52d75, checksum: 0x000006fa4da340cd},
	{children: 121, nperms: 256, seed: 0x63f33b583c0f2798, checksum: 0x0000071d247c5f54},
	{children: 122, nperms: 256, seed: 0x615c622935825616, checksum: 0x000007430c7176b3},
	{children: 123, nperms: 256, seed: 0xc69189d76872af9a, checksum: 0x0000075925c749d5},
	{children: 124, nperms: 256, seed: 0xf4050a2ff3986a42, checksum: 0x000007760b16d276},
	{children: 125, nperms: 256, seed: 0xcff6bf9171a277cb, checksum: 0x000007abf7457004},
	{children: 126, nperms: 256, seed: 0xa13c261de2a975d7, checksum: 0x000007b4edf43211},
	{children: 127, nperms: 256, seed: 0xc5f4031a6cec6b01, checksum: 0x000007deec966f87},
	{children: 128, nperms: 256, seed: 0x698d21f61befa7d4, checksum: 0x000007e95cbcb124},
	{children: 129, nperms: 256, seed: 0x2be63bbe59df8854, checksum: 0x0000081eba81b449},
	{children: 130, nperms: 256, seed: 0x2180fdc70ba19fbe, checksum: 0x00000840a86f275a},
	{children: 131, nperms: 256, seed: 0x3c7b47190d7bca47, checksum: 0x0000085843c4ec0f},
	{children: 132, nperms: 256, seed: 0xd06a2656c2b16a2d, checksum: 0x00000878dce5cdd6},
	{children: 133, nperms: 256, seed: 0x89dc1fb8baa12726, checksum: 0x00000894d45cfe9f},
	{children: 134, nperms: 256, seed: 0x6615e50866192f13, checksum: 0x000008b110406a7d},
	{children: 135, nperms: 256, seed: 0xa609c9f54b9dbf7f, checksum: 0x000008f64bbfa0cd},
	{children: 136, nperms: 256, seed: 0x8fb485f7b8431419, checksum: 0x000008fc79ddf5ad},
	{children: 137, nperms: 256, seed: 0x40988bde38cfae15, checksum: 0x0000090e944fe9a3},
	{children: 138, nperms: 256, seed: 0x76f1fb825f1b5f3b, checksum: 0x000009393a6b2604},
	{children: 139, nperms: 256, seed: 0xb1768315ba1ef1c1, checksum: 0x00000977ee6bb60b},
	{children: 140, nperms: 256, seed: 0x947aebd113c16275, checksum: 0x000009995197900c},
	{children: 141, nperms: 256, seed: 0xebd7e73fcbfbd250, checksum: 0x000009941f7d6a10},
	{children: 142, nperms: 256, seed: 0xc7c62d687efa04ba, checksum: 0x000009f1e7320726},
	{children: 143, nperms: 256, seed: 0x2b97bc1ac9bfc727, checksum: 0x000009dda86e488a},
	{children: 144, nperms: 256, seed: 0x71a4c7a0d1b93bca, checksum: 0x00000a0ff5c6206a},
	{children: 145, nperms: 256, seed: 0x3db0fd9a2889f2d3, checksum: 0x00000a3d5f8029a0},
	{children: 146, nperms: 256, seed: 0x5e16a0936e6ebb4f, checksum: 0x00000a61cfc44f33},
	{children: 147, nperms: 256, seed: 0x48d86513d51d5ab3, checksum: 0x00000a7a917df789},
	{children: 148, nperms: 256, seed: 0x0e2707c29c7c80f7, checksum: 0x00000ab8b21b090f},
	{children: 149, nperms: 256, seed: 0xeef6b90b2873078e, checksum: 0x00000ad819b5f793},
	{children: 150, nperms: 256, seed: 0x5c74901930f42aa5, checksum: 0x00000b04bc34b61c},
	{children: 151, nperms: 256, seed: 0x6780b9b7ef3d1571, checksum: 0x00000b13f0ac119c},
	{children: 152, nperms: 256, seed: 0x5f9f45931955b101, checksum: 0x00000b3752cb069a},
	{children: 153, nperms: 256, seed: 0x3988cd9403516c78, checksum: 0x00000b672b9f93c8},
	{children: 154, nperms: 256, seed: 0x6e3215639bb8405c, checksum: 0x00000b9567de82c9},
	{children: 155, nperms: 256, seed: 0x45056fbc5e5f8730, checksum: 0x00000bc2ba15e24d},
	{children: 156, nperms: 256, seed: 0x46049b760054472d, checksum: 0x00000bcdec26b3c9},
	{children: 157, nperms: 256, seed: 0xbef6de70a79f0a75, checksum: 0x00000c2bd37f93e7},
	{children: 158, nperms: 256, seed: 0xb3c5c3db7c9794d0, checksum: 0x00000c3e23f9ed4e},
	{children: 159, nperms: 256, seed: 0x352d2822beba6d5c, checksum: 0x00000c610d231c88},
	{children: 160, nperms: 256, seed: 0xf30ee19ddd4afa2e, checksum: 0x00000c6a6b246e6d},
	{children: 161, nperms: 256, seed: 0xce68dd4ab2dcd278, checksum: 0x00000caeba617e2d},
	{children: 162, nperms: 256, seed: 0x613c9e78805e41cb, checksum: 0x00000cbc2b0c61c2},
	{children: 163, nperms: 256, seed: 0xeeab63f6eaebae4d, checksum: 0x00000cfcb0895d26},
	{children: 164, nperms: 256, seed: 0x8bb8428ee5865272, checksum: 0x00000d2f9a8768a3},
	{children: 165, nperms: 256, seed: 0xfe06cfee48df11fa, checksum: 0x00000d5f4bc2b0e3},
	{children: 166, nperms: 256, seed: 0xcfd6e29926b59b14, checksum: 0x00000d6393bc05ee},
	{children: 167, nperms: 256, seed: 0x4ffb773628a1e28d, checksum: 0x00000da911be9d37},
	{children: 168, nperms: 256, seed: 0x54505b3532af3810, checksum: 0x00000db8492201d0},
	{children: 169, nperms: 256, seed: 0x81cabcc02e8336f1, checksum: 0x00000e0420e97916},
	{children: 170, nperms: 256, seed: 0x7303ecfd5788a7b0, checksum: 0x00000e0934cfca6f},
	{children: 171, nperms: 256, seed: 0xd6d187fcca63bc41, checksum: 0x00000e526875d3ed},
	{children: 172, nperms: 256, seed: 0x12b3d6b7cf93198e, checksum: 0x00000e5cc7e5dfb3},
	{children: 173, nperms: 256, seed: 0x68b87e58537cb3ed, checksum: 0x00000e9322810a09},
	{children: 174, nperms: 256, seed: 0xe592972360b1f188, checksum: 0x00000ec9c33a5ed1},
	{children: 175, nperms: 256, seed: 0x42226d7740fd95d5, checksum: 0x00000ede204b3329},
	{children: 176, nperms: 256, seed: 0x85e79ec390f0c4ce, checksum: 0x00000f1174074484},
	{children: 177, nperms: 256, seed: 0xfa0f8f8c35fcc819, checksum: 0x00000f3f1ad39a3e},
	{children: 178, nperms: 256, seed: 0x990fc6d5576461c7, checksum: 0x00000f87974caba0},
	{children: 179, nperms: 256, seed: 0x356eb43b1804de5f, checksum: 0x00000f9f2474d35e},
	{children: 180, nperms: 256, seed: 0x38aa9000d7aae573, checksum: 0x00000fd5b6addd06},
	{children: 181, nperms: 256, seed: 0x0b1763e2e5eebd1d, checksum: 0x00000ffb76ce2b66},
	{children: 182, nperms: 256, seed: 0xaed65bed47dedd57, checksum: 0x0000101ac344590c},
	{children: 183, nperms: 256, seed: 0x77e4fbca8c7fd444, checksum: 0x0000105d9c2a52c7},
	{children: 184, nperms: 256, seed: 0x9bcd3c6860f00181, checksum: 0x00001097462ff6f1},
	{children: 185, nperms: 256, seed: 0x5b7f5b92a8f38b96, checksum: 0x00001097827236eb},
	{children: 186, nperms: 256, seed: 0x4ec22016d2d85110, checksum: 0x000010f77854adf5},
	{children: 187, nperms: 256, seed: 0x8d4cfc15d3f88d91, checksum: 0x000010f75120b900},
	{children: 188, nperms: 256, seed: 0x52f131b1250220e8, checksum: 0x00001158dfe4a41c},
	{children: 189, nperms: 256, seed: 0xfa5dc1ee85fdebd7, checksum: 0x00001149e3d8e4af},
	{children: 190, nperms: 256, seed: 0xcc6e84d8c990a8a9, checksum: 0x00001198c52212c5},
	{children: 191, nperms: 256, seed: 0xaece605d95d3a751, checksum: 0x000011bced5821f2},
	{children: 192, nperms: 256, seed: 0x936556ede86f0b85, checksum: 0x000011fb9c0b240f},
	{children: 193, nperms: 256, seed: 0x22d3eb1a6eca886f, checksum: 0x00001231dbd85c54},
	{children: 194, nperms: 256, seed: 0x0d64a83435ee5147, checksum: 0x0000126ae7594a62},
	{children: 195, nperms: 256, seed: 0x603fc435f11781d7, checksum: 0x0000129d389a1f8b},
	{children: 196, nperms: 256, seed: 0x5d25211ece491c0c, checksum: 0x000012c86c7bdc51},
	{children: 197, nperms: 256, seed: 0x316ae4dd498cdb99, checksum: 0x0000130c14089adf},
	{children: 198, nperms: 256, seed: 0x0689348fe03cffe5, checksum: 0x0000130705e0bac0},
	{children: 199, nperms: 256, seed: 0xb547ad5221c59950, checksum: 0x0000135046838094},
	{children: 200, nperms: 256, seed: 0x0d7c80c5dda4b4cb, checksum: 0x000013a3e7132632},
	{children: 201, nperms: 256, seed: 0x05d55e7d70bad126, checksum: 0x000013bff4c42026},
	{children: 202, nperms: 256, seed: 0x5b6b3399dbd2bcbd, checksum: 0x000013f7b202914b},
	{children: 203, nperms: 256, seed: 0xdf46f56c41ea861d, checksum: 0x0000142091c0ba26},
	{children: 204, nperms: 256, seed: 0x6ab8a044718a698b, checksum: 0x00001469b02bb128},
	{children: 205, nperms: 256, seed: 0xfb2b742d05f54096, checksum: 0x0000146789357a4b},
	{children: 206, nperms: 256, seed: 0x5879587e83e5dfcb, checksum: 0x000014c437258b0d},
	{children: 207, nperms: 256, seed: 0x61b65616dd4d9288, checksum: 0x000014d43b401a1e},
	{children: 208, nperms: 256, seed: 0x8c3722ddabd63083, checksum: 0x0000150ec78643b7},
	{children: 209, nperms: 256, seed: 0x75a0df47f4d66fd8, checksum: 0x00001539a49cd0dc},
	{children: 210, nperms: 256, seed: 0x4160fa0f875155e9, checksum: 0x00001570785bcbe9},
	{children: 211, nperms: 256, seed: 0xabe7e685cbc9ce5c, checksum: 0x0000159de43925eb},
	{children: 212, nperms: 256, seed: 0x8689a65aaa3c99c0, checksum: 0x000015fc66ccb6b9},
	{children: 213, nperms: 256, seed: 0xa802e731e8320896, checksum: 0x00001621628872f5},
	{children: 214, nperms: 256, seed: 0x9c2c6beb7a7b25bb, checksum: 0x00001655fe9367fa},
	{children: 215, nperms: 256, seed: 0x6c2bff4eecf7e523, checksum: 0x000016a67633f2dd},
	{children: 216, nperms: 256, seed: 0x633da96e9ccb7220, checksum: 0x000016c1857ad660},
	{children: 217, nperms: 256, seed: 0xed34dcf8d4fdc37d, checksum: 0x0000171ae5c143cb},
	{children: 218, nperms: 256, seed: 0xce9e0e8470219fb9, checksum: 0x0000175c46f535dc},
	{children: 219, nperms: 256, seed: 0x48e419f13839522f, checksum: 0x000017511618b253},
	{children: 220, nperms: 256, seed: 0xe83ce578a61a3e92, checksum: 0x0000178efe345d42},
	{children: 221, nperms: 256, seed: 0x792501128b8e7562, checksum: 0x000017f6395d7838},
	{children: 222, nperms: 256, seed: 0x3d3b033300746ffd, checksum: 0x000017f9dede6cf7},
	{children: 223, nperms: 256, seed: 0xaa42b54bd79b9b39, checksum: 0x00001835031bc4e1},
	{children: 224, nperms: 256, seed: 0xbe8d8bfee659c4ff, checksum: 0x0000186ecee4caec},
	{children: 225, nperms: 256, seed: 0x0e4fd33344959bf5, checksum: 0x0000188b770105b1},
	{children: 226, nperms: 256, seed: 0xa6318818535bd977, checksum: 0x000018bf36dba228},
	{children: 227, nperms: 256, seed: 0x09a58d6ef4cd24a4, checksum: 0x00001946e00c3d0e},
	{children: 228, nperms: 256, seed: 0xd5df92c1210a61e1, checksum: 0x00001955f284187d},
	{children: 229, nperms: 256, seed: 0x2f9dad47ecbfb07f, checksum: 0x000019b445a00aa2},
	{children: 230, nperms: 256, seed: 0x50d1653470eb8009, checksum: 0x000019e275ecc423},
	{children: 231, nperms: 256, seed: 0x859b561d9909f1f5, checksum: 0x00001a0985e6b6e6},
	{children: 232, nperms: 256, seed: 0x6e4495e95ba570a6, checksum: 0x00001a4c9ec980c5},
	{children: 233, nperms: 256, seed: 0x104a5ae2c742cd87, checksum: 0x00001a9a1f4de4f7},
	{children: 234, nperms: 256, seed: 0xbf6e8f617885bb29, checksum: 0x00001adc9d0df84d},
	{children: 235, nperms: 256, seed: 0xba9db9112d231b48, checksum: 0x00001b05370c313e},
	{children: 236, nperms: 256, seed: 0xcc430d194996378a, checksum: 0x00001b5f09eb6ae4},
	{children: 237, nperms: 256, seed: 0x8a37e532dcb37264, checksum: 0x00001ba88015fa57},
	{children: 238, nperms: 256, seed: 0x137fc0b403b6691f, checksum: 0x00001bc98a59844c},
	{children: 239, nperms: 256, seed: 0x4b52fd61f556ebf1, checksum: 0x00001bb4446eae57},
	{children: 240, nperms: 256, seed: 0xe151761a61bed245, checksum: 0x00001bfc708585e4},
	{children: 241, nperms: 256, seed: 0x18ad79678dcc175b, checksum: 0x00001c497759b280},
	{children: 242, nperms: 256, seed: 0x70d604fcd9499c33, checksum: 0x00001ca489da0135},
	{children: 243, nperms: 256, seed: 0x584678bd5bec7e6b, checksum: 0x00001cce5fb12f23},
	{children: 244, nperms: 256, seed: 0x3df107aa54b635b3, checksum: 0x00001d013be32dd7},
	{children: 245, nperms: 256, seed: 0xcc8377b324aa1922, checksum: 0x00001d33f9a376d2},
	{children: 246, nperms: 256, seed: 0xc189e45cb4aca673, checksum: 0x00001d609af1a280},
	{children: 247, nperms: 256, seed: 0xa2bf7a007477f3c5, checksum: 0x00001d9fefa22ca8},
	{children: 248, nperms: 256, seed: 0x8a9e55e3586eb6ab, checksum: 0x00001de182ca01ce},
	{children: 249, nperms: 256, seed: 0x6d6feba1dcae9397, checksum: 0x00001e37f9906fc5},
	{children: 250, nperms: 256, seed: 0x889f6848d4489d14, checksum: 0x00001ea6fc12e456},
	{children: 251, nperms: 256, seed: 0x2126c3b4ee836dde, checksum: 0x00001ea151a0e96e},
	{children: 252, nperms: 256, seed: 0xceec65ee5be40279, checksum: 0x00001f08192ed5c1},
	{children: 253, nperms: 256, seed: 0x6d69532520419418, checksum: 0x00001f3c8e9b0b72},
	{children: 254, nperms: 256, seed: 0x8c93161db4f0fd85, checksum: 0x00001f79c5d08c45},
	{children: 255, nperms: 256, seed: 0xacd9a3be765cb85d, checksum: 0x00001fc35c2b6a2b},
}
