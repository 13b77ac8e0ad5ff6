package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, nil, 0644))
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Noto", "NotoSansSC-Bold.OTF"))
	touch(t, filepath.Join(dir, "README.txt"))

	list, err := ScanDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Inter/Inter-Regular.ttf", "Noto/NotoSansSC-Bold.OTF"}, list)

	list, err = ScanDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "Inter", "Inter-Regular.ttf"))
	touch(t, filepath.Join(dir, "Noto", "NotoSansSC-Bold.ttf"))
	touch(t, filepath.Join(dir, "Noto", "NotoSansSC-Regular.ttf"))

	got, err := Find([]string{dir}, CJKFamilies...)
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "Noto", "NotoSansSC-Regular.ttf")), got)

	got, err = Find([]string{dir}, "Roboto")
	require.NoError(t, err)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "Inter", "Inter-Regular.ttf")), got, "falls back to the first font")

	_, err = Find([]string{filepath.Join(dir, "missing")}, CJKFamilies...)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCodepoints(t *testing.T) {
	cps := Codepoints("股骨", "Femur\n", "骨")
	assert.Len(t, cps, 95+2)
	assert.Equal(t, ' ', cps[0])
	assert.Contains(t, cps, '股')
	assert.Contains(t, cps, '骨')
	assert.NotContains(t, cps, '\n')
	for i := 1; i < len(cps); i++ {
		assert.Less(t, cps[i-1], cps[i])
	}
}
