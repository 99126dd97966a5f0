package webp

import "testing"

func iccProfile(declaredSize uint32, withSignature bool) []byte {
	p := make([]byte, 128)
	p[0] = byte(declaredSize >> 24)
	p[1] = byte(declaredSize >> 16)
	p[2] = byte(declaredSize >> 8)
	p[3] = byte(declaredSize)
	if withSignature {
		copy(p[36:40], "acsp")
	}
	return p
}

func TestValidateICCPValid(t *testing.T) {
	data := iccProfile(128, true)
	if err := validateICCP(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateICCPTooShort(t *testing.T) {
	if err := validateICCP(make([]byte, 10)); err == nil {
		t.Fatal("expected error for short profile")
	}
}

func TestValidateICCPMissingSignature(t *testing.T) {
	data := iccProfile(128, false)
	if err := validateICCP(data); err == nil {
		t.Fatal("expected error for missing acsp signature")
	}
}

func TestValidateICCPSizeMismatch(t *testing.T) {
	data := iccProfile(999, true)
	if err := validateICCP(data); err == nil {
		t.Fatal("expected error for declared-size mismatch")
	}
}

func TestValidateEXIFLittleEndian(t *testing.T) {
	data := []byte{'I', 'I', 42, 0, 0, 0, 0, 0}
	if err := validateEXIF(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateEXIFBigEndian(t *testing.T) {
	data := []byte{'M', 'M', 0, 42, 0, 0, 0, 0}
	if err := validateEXIF(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateEXIFBadMagic(t *testing.T) {
	data := []byte{'I', 'I', 41, 0, 0, 0, 0, 0}
	if err := validateEXIF(data); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestValidateEXIFBadMarker(t *testing.T) {
	data := []byte{'X', 'X', 42, 0, 0, 0, 0, 0}
	if err := validateEXIF(data); err == nil {
		t.Fatal("expected error for missing II/MM marker")
	}
}

func TestValidateXMPValid(t *testing.T) {
	data := []byte("<?xpacket begin=...?>...x:xmpmeta...<?xpacket end=...?>")
	if err := validateXMP(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateXMPEmpty(t *testing.T) {
	if err := validateXMP(nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestValidateXMPMissingMarkers(t *testing.T) {
	if err := validateXMP([]byte("<rdf>no markers here</rdf>")); err == nil {
		t.Fatal("expected error for missing xpacket/xmpmeta markers")
	}
}

func TestValidateXMPInvalidUTF8(t *testing.T) {
	data := append([]byte("<?xpacket x:xmpmeta"), 0xff, 0xfe)
	if err := validateXMP(data); err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}
