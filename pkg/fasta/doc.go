// Package fasta provides record-boundary scanning over FASTA text.
//
// A record is a header line starting with '>' plus every following line up to
// the next header or the end of input. Lines are kept byte for byte, including
// their terminators, so writing the records of a file back out in order
// reproduces the file exactly.
//
// # Usage
//
//	rc, err := fasta.Open("proteome.fasta.gz")
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
//
//	sc := fasta.NewScanner(rc)
//	for {
//	    rec, err := sc.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use rec.Title(), rec.Body ...
//	}
//
// Count performs the read-only diagnostic pass used before splitting.
package fasta
