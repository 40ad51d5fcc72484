// Package vision содержит конвейер поиска знаков STOP.
//
// Конвейер состоит из двух чистых стадий:
//
//   - Segmenter переводит кадр в HSV (шкала OpenCV: H 0-180, S и V 0-255),
//     отмечает пиксели двух красных диапазонов и чистит маску морфологическим
//     закрытием и открытием;
//   - Extractor находит внешние контуры маски, отбрасывает мелкие и
//     вытянутые области и возвращает прямоугольники с центрами.
//
// Detector собирает обе стадии в реализацию port.SignDetector без cgo.
// При сборке с тегом gocv доступен GoCVDetector на OpenCV с теми же порогами.
// Координаты всех находок отсчитываются от левого верхнего угла границ кадра.
package vision
