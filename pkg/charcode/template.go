package charcode

// defaultTemplate is the reference character used to pad short codes up to
// CanonicalLength. Entry i is the default for token position i.
var defaultTemplate = [CanonicalLength]string{
	// header
	0: "placeholder", 1: "", 2: "", 3: "Coming soon!", 4: "",
	5: "", 6: "", 7: "", 8: "", 9: "",
	// numbers
	10: "263", 11: "40", 12: "40", 13: "4", 14: "17", 15: "1", 16: "1", 17: "0", 18: "1", 19: "0",
	20: "1", 21: "1", 22: "0", 23: "0", 24: "0", 25: "0", 26: "0", 27: "0", 28: "0", 29: "0",
	30: "0", 31: "0", 32: "0", 33: "0", 34: "0", 35: "0", 36: "0", 37: "0", 38: "0", 39: "0",
	40: "0", 41: "0", 42: "0", 43: "127", 44: "0", 45: "0", 46: "0", 47: "22", 48: "22", 49: "0",
	50: "0", 51: "1", 52: "1", 53: "1", 54: "2", 55: "0", 56: "0", 57: "0", 58: "0", 59: "0",
	60: "1", 61: "6", 62: "0", 63: "0", 64: "0", 65: "0", 66: "0", 67: "0", 68: "0", 69: "1",
	70: "1", 71: "0", 72: "1", 73: "1", 74: "2", 75: "0", 76: "0", 77: "22", 78: "11", 79: "1",
	80: "1", 81: "1", 82: "23", 83: "25", 84: "1", 85: "1", 86: "1", 87: "1", 88: "1", 89: "1",
	90: "21", 91: "21", 92: "0", 93: "6", 94: "0", 95: "0", 96: "1", 97: "0", 98: "1", 99: "1",
	100: "1", 101: "1", 102: "0", 103: "0", 104: "0", 105: "0", 106: "0", 107: "0", 108: "0", 109: "1",
	110: "1", 111: "0", 112: "0", 113: "0", 114: "1", 115: "1", 116: "0", 117: "0", 118: "0", 119: "1",
	120: "1", 121: "0", 122: "0", 123: "0", 124: "1", 125: "1", 126: "0", 127: "0", 128: "0", 129: "1",
	130: "1", 131: "0", 132: "0", 133: "0", 134: "1", 135: "1", 136: "0", 137: "0", 138: "0", 139: "1",
	140: "1", 141: "0", 142: "0", 143: "0", 144: "1", 145: "1", 146: "0", 147: "0", 148: "0", 149: "1",
	150: "1", 151: "0", 152: "0", 153: "0", 154: "1", 155: "1", 156: "0", 157: "0", 158: "0", 159: "1",
	160: "1", 161: "0", 162: "0", 163: "0", 164: "1", 165: "1", 166: "0", 167: "0", 168: "0", 169: "1",
	170: "1", 171: "0", 172: "0", 173: "0", 174: "1", 175: "1", 176: "0", 177: "0", 178: "0", 179: "1",
	180: "1", 181: "0", 182: "0", 183: "0", 184: "1", 185: "1", 186: "0", 187: "0", 188: "0", 189: "1",
	190: "1", 191: "0", 192: "1", 193: "1", 194: "0", 195: "1", 196: "1", 197: "0", 198: "0", 199: "0",
	200: "1", 201: "1", 202: "0", 203: "1", 204: "1", 205: "1", 206: "1", 207: "1", 208: "1", 209: "0",
	210: "0", 211: "1", 212: "1", 213: "1", 214: "1", 215: "0", 216: "1", 217: "1", 218: "0", 219: "0",
	220: "1", 221: "1", 222: "0", 223: "1", 224: "1", 225: "1", 226: "1", 227: "1", 228: "1", 229: "1",
	230: "1", 231: "1", 232: "1", 233: "1", 234: "1", 235: "1", 236: "1", 237: "1", 238: "1", 239: "5",
	240: "497", 241: "0", 242: "0", 243: "1", 244: "1", 245: "0", 246: "1", 247: "0", 248: "0", 249: "0",
	250: "1", 251: "1", 252: "0", 253: "0", 254: "1", 255: "1", 256: "0", 257: "0", 258: "0", 259: "0",
	260: "0", 261: "0", 262: "0", 263: "0", 264: "0", 265: "0", 266: "1", 267: "1", 268: "1", 269: "0",
	270: "0", 271: "0", 272: "0", 273: "0", 274: "0", 275: "0", 276: "0", 277: "0", 278: "0",
	// colors
	279: "FFFFFF", 280: "6C71A4", 281: "8A6E5E", 282: "3A1F17", 283: "694F43", 284: "8A6E5E",
	285: "3A1F17", 286: "694F43", 287: "8A6E5E", 288: "3A1F17", 289: "694F43", 290: "8A6E5E",
	291: "3A1F17", 292: "694F43", 293: "8A6E5E", 294: "3A1F17", 295: "694F43", 296: "B15482",
	297: "FFC2C2", 298: "855944", 299: "020202", 300: "27170F", 301: "855944", 302: "020202",
	303: "27170F", 304: "A17261", 305: "3A1F17", 306: "A17261", 307: "3A1F17", 308: "8A624F",
	309: "020202", 310: "8A624F", 311: "020202", 312: "191919", 313: "020202", 314: "ECECEC",
	315: "4638FF", 316: "020202", 317: "BBD4FF", 318: "8589FF", 319: "020202", 320: "FF93BC",
	321: "7F7EA6", 322: "020202", 323: "8AAEFF", 324: "FF8383", 325: "8589FF", 326: "FFC2C2",
	327: "020202", 328: "FF8383", 329: "020202", 330: "FFFFFF", 331: "EDBDFF", 332: "4F03AA",
	333: "FFFFFF", 334: "DEECFF", 335: "020202", 336: "3A82FF", 337: "EBE0FF", 338: "020202",
	339: "8AAEFF", 340: "0256C9", 341: "020202", 342: "8AAEFF", 343: "E0E1FF", 344: "020202",
	345: "8ACEFF", 346: "EDBDFF", 347: "4F03AA", 348: "E0FFFE", 349: "191919", 350: "020202",
	351: "4638FF", 352: "AAA7CB", 353: "020202", 354: "EEE9FF", 355: "AAA7CB", 356: "020202",
	357: "EEE9FF", 358: "EDBDFF", 359: "4F03AA", 360: "E0FFFE", 361: "EDBDFF", 362: "4F03AA",
	363: "E0FFFE", 364: "FFFFFF", 365: "B2AEDB", 366: "FFFFFF", 367: "FFFFFF", 368: "B2AEDB",
	369: "FFFFFF", 370: "E0F4FF", 371: "6605D9", 372: "EDBDFF", 373: "EDBDFF", 374: "4F03AA",
	375: "E0FFFE", 376: "FFFFFF", 377: "020202", 378: "AAA7CB", 379: "FFFFFF", 380: "020202",
	381: "AAA7CB", 382: "4F03AA", 383: "4F03AA", 384: "EDBDFF", 385: "4F03AA", 386: "4F03AA",
	387: "EDBDFF", 388: "E0FFFE", 389: "6605D9", 390: "FFFFFF", 391: "E0FFFE", 392: "6605D9",
	393: "FFFFFF", 394: "4638FF", 395: "020202", 396: "BCBBFF", 397: "B2AEDB", 398: "B2AEDB",
	399: "DEECFF", 400: "E0FFFE", 401: "6605D9", 402: "E0FFFE", 403: "FFFFFF", 404: "020202",
	405: "A487FF", 406: "FFFFFF", 407: "020202", 408: "A487FF", 409: "FF3F3F", 410: "020202",
	411: "FFC2C2", 412: "FF3F3F", 413: "020202", 414: "FFFFFF", 415: "FF3F3F", 416: "020202",
	417: "FFFFFF", 418: "FF3F3F", 419: "020202", 420: "191919", 421: "8589FF", 422: "020202",
	423: "FFFFFF", 424: "8589FF", 425: "020202", 426: "FFFFFF", 427: "FFFFFF", 428: "B2AEDB",
	429: "E0E1FF", 430: "FFFFFF", 431: "B2AEDB", 432: "E0E1FF", 433: "020202", 434: "020202",
	435: "020202", 436: "FFFFFF", 437: "020202", 438: "FFFFFF", 439: "020202", 440: "020202",
	441: "020202", 442: "020202", 443: "020202", 444: "020202", 445: "FFFFFF", 446: "FFFFFF",
	// numbers2
	447: "100", 448: "-100", 449: "1", 450: "1", 451: "360", 452: "100", 453: "-100", 454: "1", 455: "1", 456: "360",
	457: "100", 458: "-100", 459: "1", 460: "1", 461: "360", 462: "100", 463: "-100", 464: "1", 465: "1", 466: "360",
	467: "100", 468: "-100", 469: "1", 470: "1", 471: "360", 472: "100", 473: "-100", 474: "1", 475: "1", 476: "360",
	477: "1",
}
