package apuracao

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ComprimirPasta gera <pasta>.zip com o conteúdo da pasta e remove a pasta em seguida
func ComprimirPasta(fonte string) error {
	fonte = filepath.Clean(fonte)
	if fonte == "." || fonte == ".." || fonte == string(filepath.Separator) {
		return errors.Errorf("a pasta %q não pode ser comprimida e removida", fonte)
	}
	alvo := fonte + ".zip"

	if err := os.RemoveAll(alvo); err != nil {
		return err
	}

	file, err := os.Create(alvo)
	if err != nil {
		return err
	}

	writer := zip.NewWriter(file)

	err = filepath.Walk(fonte, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}

		header.Method = zip.Deflate

		header.Name, err = filepath.Rel(filepath.Dir(fonte), path)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(header.Name)
		if info.IsDir() {
			header.Name += "/"
		}

		headerWriter, err := writer.CreateHeader(header)
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}

		_, err = io.Copy(headerWriter, f)
		if err != nil {
			f.Close()
			return err
		}

		return f.Close()
	})

	if err != nil {
		writer.Close()
		file.Close()
		return errors.Wrapf(err, "falha ao comprimir %s", fonte)
	}

	if err = writer.Close(); err != nil {
		file.Close()
		return errors.Wrapf(err, "falha ao finalizar %s", alvo)
	}

	if err = file.Close(); err != nil {
		return errors.Wrapf(err, "falha ao fechar %s", alvo)
	}

	return errors.Wrapf(os.RemoveAll(fonte), "falha ao remover a pasta %s após a compressão", fonte)
}
