package blit

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestSaturationTable(t *testing.T) {
	tables := NewTables()
	for _, grays := range []int{2, 5, 17, 256} {
		sat, err := tables.Saturation(grays)
		if err != nil {
			t.Fatalf("grays=%d: %v", grays, err)
		}
		if len(sat) != 3*grays-1 {
			t.Errorf("grays=%d: expected length %d, got %d", grays, 3*grays-1, len(sat))
		}
		for i, v := range sat {
			expected := min(i, grays-1)
			if int(v) != expected {
				t.Errorf("grays=%d: sat[%d] = %d, expected %d", grays, i, v, expected)
				break
			}
		}
	}
}

func TestConversionTable(t *testing.T) {
	tables := NewTables()

	conv, err := tables.Conversion(128, 17)
	if err != nil {
		t.Fatal(err)
	}
	if len(conv) != 17 {
		t.Fatalf("expected 17 entries, got %d", len(conv))
	}
	if conv[0] != 0 {
		t.Errorf("conv[0] = %d, expected 0", conv[0])
	}
	if conv[16] != 127 {
		t.Errorf("conv[16] = %d, expected 127", conv[16])
	}
	for i, v := range conv {
		if expected := i * 127 / 16; int(v) != expected {
			t.Errorf("conv[%d] = %d, expected %d", i, v, expected)
		}
	}

	conv, err = tables.Conversion(17, 5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(conv, []byte{0, 4, 8, 12, 16}) {
		t.Errorf("unexpected 5->17 table %v", conv)
	}
}

func TestTablesReuse(t *testing.T) {
	tables := NewTables()

	a, _ := tables.Saturation(5)
	b, _ := tables.Saturation(17)
	a2, _ := tables.Saturation(5)
	b2, _ := tables.Saturation(17)
	if &a[0] != &a2[0] || &b[0] != &b2[0] {
		t.Error("tables were recreated")
	}

	c, _ := tables.Conversion(17, 5)
	_, _ = tables.Conversion(128, 5)
	c2, _ := tables.Conversion(17, 5)
	if &c[0] != &c2[0] {
		t.Error("conversion table was recreated")
	}

	nSat, nConv := tables.Len()
	if nSat != 2 || nConv != 2 {
		t.Errorf("expected 2 and 2 tables, got %d and %d", nSat, nConv)
	}
}

func TestTablesBadArgument(t *testing.T) {
	tables := NewTables()
	if _, err := tables.Saturation(1); !errors.Is(err, ErrBadArgument) {
		t.Errorf("Saturation(1): expected ErrBadArgument, got %v", err)
	}
	if _, err := tables.Conversion(5, 0); !errors.Is(err, ErrBadArgument) {
		t.Errorf("Conversion(5, 0): expected ErrBadArgument, got %v", err)
	}
	if _, err := tables.Conversion(300, 5); !errors.Is(err, ErrBadArgument) {
		t.Errorf("Conversion(300, 5): expected ErrBadArgument, got %v", err)
	}
	if nSat, nConv := tables.Len(); nSat != 0 || nConv != 0 {
		t.Errorf("failed lookups created tables: %d, %d", nSat, nConv)
	}
}

func TestTablesOverflow(t *testing.T) {
	tables := NewTables(WithMaxSaturations(2), WithMaxConversions(1))

	sat5, err := tables.Saturation(5)
	if err != nil {
		t.Fatal(err)
	}
	before := bytes.Clone(sat5)
	if _, err := tables.Saturation(17); err != nil {
		t.Fatal(err)
	}

	_, err = tables.Saturation(3)
	if !errors.Is(err, ErrSaturationOverflow) {
		t.Fatalf("expected ErrSaturationOverflow, got %v", err)
	}
	if Status(err) != StatusTableOverflow {
		t.Errorf("expected status %d, got %d", StatusTableOverflow, Status(err))
	}

	again, err := tables.Saturation(5)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(again, before) {
		t.Errorf("existing table changed: %v != %v", again, before)
	}

	if _, err := tables.Conversion(17, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := tables.Conversion(128, 5); !errors.Is(err, ErrConversionOverflow) {
		t.Errorf("expected ErrConversionOverflow, got %v", err)
	}
}

func TestTablesPrewarm(t *testing.T) {
	tables := NewTables()
	if err := tables.Prewarm(5, 17, 128); err != nil {
		t.Fatal(err)
	}
	nSat, nConv := tables.Len()
	if nSat != 3 || nConv != 6 {
		t.Errorf("expected 3 and 6 tables, got %d and %d", nSat, nConv)
	}

	small := NewTables(WithMaxConversions(1))
	if err := small.Prewarm(5, 17); !errors.Is(err, ErrConversionOverflow) {
		t.Errorf("expected ErrConversionOverflow, got %v", err)
	}
}

func TestTablesConcurrent(t *testing.T) {
	tables := NewTables()
	counts := []int{2, 5, 17, 128, 256}

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				g := counts[(i+j)%len(counts)]
				if _, err := tables.Saturation(g); err != nil {
					t.Error(err)
					return
				}
				if _, err := tables.Conversion(256, g); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()

	nSat, nConv := tables.Len()
	if nSat != len(counts) || nConv != len(counts) {
		t.Errorf("expected %d tables each, got %d and %d", len(counts), nSat, nConv)
	}
}
