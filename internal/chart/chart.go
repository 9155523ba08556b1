package chart

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series 一条 (规模, 耗时) 曲线
type Series struct {
	// Name 产物文件名（不含扩展名），调用方保证每次运行唯一
	Name  string
	Title string
	X     []float64
	Y     []float64
}

// Artifact 渲染结果：落盘路径 + PNG 原始字节
type Artifact struct {
	Path string
	PNG  []byte
}

// Base64 与旧版 graph_base64 字段一致的内联编码
func (a Artifact) Base64() string {
	return base64.StdEncoding.EncodeToString(a.PNG)
}

type PNGRenderer struct {
	dir    string
	width  vg.Length
	height vg.Length
}

func NewPNGRenderer(dir string) *PNGRenderer {
	return &PNGRenderer{dir: dir, width: 6 * vg.Inch, height: 4 * vg.Inch}
}

func (r *PNGRenderer) Render(ctx context.Context, s Series) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	if s.Name == "" || filepath.Base(s.Name) != s.Name || strings.ContainsAny(s.Name, `/\`) {
		return Artifact{}, fmt.Errorf("非法的图表名称 %q", s.Name)
	}

	data, err := Encode(s, r.width, r.height)
	if err != nil {
		return Artifact{}, err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("创建输出目录失败: %w", err)
	}
	path := filepath.Join(r.dir, s.Name+".png")
	if err := writeFileAtomic(path, data); err != nil {
		return Artifact{}, err
	}
	return Artifact{Path: path, PNG: data}, nil
}

// Encode 把曲线画成 PNG
func Encode(s Series, width, height vg.Length) ([]byte, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("坐标数量不一致: x=%d y=%d", len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return nil, fmt.Errorf("没有可绘制的数据点")
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = "Input Size (n)"
	p.Y.Label.Text = "Execution Time (seconds)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, fmt.Errorf("构造曲线失败: %w", err)
	}
	p.Add(line, points)

	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return nil, fmt.Errorf("渲染图表失败: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("编码PNG失败: %w", err)
	}
	return buf.Bytes(), nil
}

// 先写临时文件再 rename，读者不会看到写了一半的图
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".chart-*.tmp")
	if err != nil {
		return fmt.Errorf("创建临时文件失败: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("写入图表失败: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("写入图表失败: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("写入图表失败: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("保存图表失败: %w", err)
	}
	return nil
}
