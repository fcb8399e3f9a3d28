package store

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Table はヘッダー付きのカンマ区切りテキストを1テーブルとして扱う。
// レコードは1行1件。区切り文字のエスケープは定義しない
// （値にカンマが入ると壊れる。既知の制限）。
type Table struct {
	path   string
	header []string
}

func New(path string, header []string) *Table {
	return &Table{path: path, header: header}
}

// Path はテーブルファイルのパス。
func (t *Table) Path() string {
	return t.path
}

// ensure はファイルが無ければヘッダー行だけで作る。
// 呼び出し側が「ファイルが無い」を観測することはない。
func (t *Table) ensure() error {
	if _, err := os.Stat(t.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", t.path, err)
	}

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("create %s: %w", t.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(t.header, ",") + "\n"); err != nil {
		return fmt.Errorf("write header %s: %w", t.path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", t.path, err)
	}
	return nil
}

// readLines は全行（ヘッダー含む）を返す。
func (t *Table) readLines() ([]string, error) {
	if err := t.ensure(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.path, err)
	}

	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{}, nil
	}
	return strings.Split(s, "\n"), nil
}

// ReadAll はヘッダーと空行を除いた全レコードを、ファイル上の順序で返す。
func (t *Table) ReadAll() ([][]string, error) {
	lines, err := t.readLines()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, strings.Split(strings.TrimSpace(line), ","))
	}
	return rows, nil
}

// Append は1レコードを追記し、戻る前にディスクへ同期する。
func (t *Table) Append(row []string) error {
	if err := t.ensure(); err != nil {
		return err
	}

	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", t.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(row, ",") + "\n"); err != nil {
		return fmt.Errorf("append %s: %w", t.path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", t.path, err)
	}
	return nil
}

// Rewrite はヘッダー＋全レコードでファイルを丸ごと置き換える。
// 既存行の変更（在庫減算）にだけ使う。
func (t *Table) Rewrite(rows [][]string) error {
	f, err := os.OpenFile(t.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", t.path, err)
	}
	defer f.Close()

	var b strings.Builder
	b.WriteString(strings.Join(t.header, ",") + "\n")
	for _, row := range rows {
		b.WriteString(strings.Join(row, ",") + "\n")
	}

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("rewrite %s: %w", t.path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", t.path, err)
	}
	return nil
}

// NextID は指定カラムを整数として走査し max+1 を返す。
// レコードが無ければ1。数値として読めない値は無視する。
func (t *Table) NextID(col int) (int64, error) {
	rows, err := t.ReadAll()
	if err != nil {
		return 0, err
	}

	var max int64 = 0
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		v, err := strconv.ParseInt(strings.TrimSpace(row[col]), 10, 64)
		if err != nil {
			continue
		}
		if v > max {
			max = v
		}
	}
	return max + 1, nil
}

// LineCount はヘッダーを含む総行数を返す。
// アカウントのsequence_no（ヘッダー込みの行位置）の採番に使う。
func (t *Table) LineCount() (int64, error) {
	lines, err := t.readLines()
	if err != nil {
		return 0, err
	}
	return int64(len(lines)), nil
}
